package browser

import (
	"context"
	"fmt"

	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"digital.vasic.webassert/pkg/session"
)

// Scripts resolving a selector answer a marker object so a
// missing element can be told apart from an empty value.
const lookupScript = `(sel, kind, name) => {
	const el = document.querySelector(sel);
	if (!el) return {found: false};
	switch (kind) {
	case 'attribute': {
		const v = el.getAttribute(name);
		if (v === null) return {found: true, present: false};
		return {found: true, present: true, value: v};
	}
	case 'css': {
		const v = getComputedStyle(el).getPropertyValue(name);
		if (v === '') return {found: true, present: false};
		return {found: true, present: true, value: v};
	}
	case 'html':
		return {found: true, value: el.outerHTML};
	case 'text':
		return {found: true, value: el.innerText};
	case 'value':
		return {found: true, value: String(el.value ?? '')};
	case 'enabled':
		return {found: true, flag: !el.disabled};
	case 'selected':
		return {found: true, flag: el.selected === true};
	case 'visible': {
		const style = getComputedStyle(el);
		if (style.display === 'none' ||
			style.visibility === 'hidden') {
			return {found: true, flag: false};
		}
		const rect = el.getBoundingClientRect();
		return {
			found: true,
			flag: rect.width > 0 && rect.height > 0,
		};
	}
	case 'viewport': {
		const style = getComputedStyle(el);
		if (style.display === 'none' ||
			style.visibility === 'hidden') {
			return {found: true, flag: false};
		}
		const rect = el.getBoundingClientRect();
		const flag = rect.width > 0 && rect.height > 0 &&
			rect.bottom > 0 && rect.right > 0 &&
			rect.top < window.innerHeight &&
			rect.left < window.innerWidth;
		return {found: true, flag: flag};
	}
	case 'size': {
		const rect = el.getBoundingClientRect();
		return {
			found: true,
			x: Math.round(rect.width),
			y: Math.round(rect.height),
		};
	}
	case 'position': {
		const rect = el.getBoundingClientRect();
		return {
			found: true,
			x: Math.round(rect.x + window.scrollX),
			y: Math.round(rect.y + window.scrollY),
		};
	}
	case 'viewposition': {
		const rect = el.getBoundingClientRect();
		return {
			found: true,
			x: Math.round(rect.x),
			y: Math.round(rect.y),
		};
	}
	}
	return {found: false};
}`

// lookup runs lookupScript and fails when the selector matches
// nothing.
func (d *Driver) lookup(
	ctx context.Context,
	selector, kind, name string,
) (gson.JSON, error) {
	res, err := d.eval(ctx, lookupScript, selector, kind, name)
	if err != nil {
		return res, err
	}
	if !res.Get("found").Bool() {
		return res, fmt.Errorf("no such element: %s", selector)
	}
	return res, nil
}

func (d *Driver) GetCookie(
	ctx context.Context,
	name string,
) (string, bool, error) {
	if d.page == nil {
		return "", false, fmt.Errorf("no page open")
	}
	res, err := proto.NetworkGetCookies{}.Call(
		d.page.Context(ctx),
	)
	if err != nil {
		return "", false, fmt.Errorf("get cookies: %w", err)
	}
	for _, cookie := range res.Cookies {
		if cookie.Name == name {
			return cookie.Value, true, nil
		}
	}
	return "", false, nil
}

func (d *Driver) CookieExists(
	ctx context.Context,
	name string,
) (bool, error) {
	_, ok, err := d.GetCookie(ctx, name)
	return ok, err
}

func (d *Driver) CookieNotExists(
	ctx context.Context,
	name string,
) (bool, error) {
	_, ok, err := d.GetCookie(ctx, name)
	return !ok, err
}

func (d *Driver) GetURL(ctx context.Context) (string, error) {
	res, err := d.eval(ctx, `() => window.location.href`)
	if err != nil {
		return "", err
	}
	return res.Str(), nil
}

func (d *Driver) GetTitle(ctx context.Context) (string, error) {
	res, err := d.eval(ctx, `() => document.title`)
	if err != nil {
		return "", err
	}
	return res.Str(), nil
}

func (d *Driver) GetPageHTML(
	ctx context.Context,
) (string, error) {
	res, err := d.eval(
		ctx, `() => document.documentElement.outerHTML`,
	)
	if err != nil {
		return "", err
	}
	return res.Str(), nil
}

func (d *Driver) CountElements(
	ctx context.Context,
	selector string,
) (int, error) {
	res, err := d.eval(
		ctx,
		`sel => document.querySelectorAll(sel).length`,
		selector,
	)
	if err != nil {
		return 0, err
	}
	return res.Int(), nil
}

func (d *Driver) GetAttribute(
	ctx context.Context,
	selector, name string,
) (string, bool, error) {
	res, err := d.lookup(ctx, selector, "attribute", name)
	if err != nil {
		return "", false, err
	}
	if !res.Get("present").Bool() {
		return "", false, nil
	}
	return res.Get("value").Str(), true, nil
}

func (d *Driver) GetCSSProperty(
	ctx context.Context,
	selector, name string,
) (string, bool, error) {
	res, err := d.lookup(ctx, selector, "css", name)
	if err != nil {
		return "", false, err
	}
	if !res.Get("present").Bool() {
		return "", false, nil
	}
	return res.Get("value").Str(), true, nil
}

func (d *Driver) GetElementHTML(
	ctx context.Context,
	selector string,
) (string, error) {
	res, err := d.lookup(ctx, selector, "html", "")
	if err != nil {
		return "", err
	}
	return res.Get("value").Str(), nil
}

func (d *Driver) GetText(
	ctx context.Context,
	selector string,
) (string, error) {
	res, err := d.lookup(ctx, selector, "text", "")
	if err != nil {
		return "", err
	}
	return res.Get("value").Str(), nil
}

func (d *Driver) GetValue(
	ctx context.Context,
	selector string,
) (string, error) {
	res, err := d.lookup(ctx, selector, "value", "")
	if err != nil {
		return "", err
	}
	return res.Get("value").Str(), nil
}

func (d *Driver) ElementExists(
	ctx context.Context,
	selector string,
) (bool, error) {
	count, err := d.CountElements(ctx, selector)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *Driver) ElementEnabled(
	ctx context.Context,
	selector string,
) (bool, error) {
	res, err := d.lookup(ctx, selector, "enabled", "")
	if err != nil {
		return false, err
	}
	return res.Get("flag").Bool(), nil
}

func (d *Driver) ElementVisible(
	ctx context.Context,
	selector string,
) (bool, error) {
	res, err := d.lookup(ctx, selector, "visible", "")
	if err != nil {
		return false, err
	}
	return res.Get("flag").Bool(), nil
}

func (d *Driver) ElementVisibleWithinViewport(
	ctx context.Context,
	selector string,
) (bool, error) {
	res, err := d.lookup(ctx, selector, "viewport", "")
	if err != nil {
		return false, err
	}
	return res.Get("flag").Bool(), nil
}

func (d *Driver) OptionIsSelected(
	ctx context.Context,
	selector string,
) (bool, error) {
	res, err := d.lookup(ctx, selector, "selected", "")
	if err != nil {
		return false, err
	}
	return res.Get("flag").Bool(), nil
}

func (d *Driver) GetElementSize(
	ctx context.Context,
	selector string,
) (session.Size, error) {
	res, err := d.lookup(ctx, selector, "size", "")
	if err != nil {
		return session.Size{}, err
	}
	return session.Size{
		Width:  res.Get("x").Int(),
		Height: res.Get("y").Int(),
	}, nil
}

func (d *Driver) GetElementPosition(
	ctx context.Context,
	selector string,
) (session.Point, error) {
	res, err := d.lookup(ctx, selector, "position", "")
	if err != nil {
		return session.Point{}, err
	}
	return session.Point{
		X: res.Get("x").Int(),
		Y: res.Get("y").Int(),
	}, nil
}

func (d *Driver) GetElementViewPosition(
	ctx context.Context,
	selector string,
) (session.Point, error) {
	res, err := d.lookup(ctx, selector, "viewposition", "")
	if err != nil {
		return session.Point{}, err
	}
	return session.Point{
		X: res.Get("x").Int(),
		Y: res.Get("y").Int(),
	}, nil
}

// interface guard
var _ session.Session = (*Driver)(nil)
