package wire

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"digital.vasic.webassert/pkg/session"
)

// elementKey is the W3C web element identifier property.
const elementKey = "element-6066-11e4-a52e-4f735466cecf"

// findElement resolves a css selector to a web element
// reference. A missing element surfaces as a "no such element"
// protocol error.
func (c *Client) findElement(
	ctx context.Context,
	selector string,
) (string, error) {
	var ref map[string]string
	err := c.do(
		ctx, http.MethodPost,
		c.sessionPath("/element"),
		map[string]any{
			"using": "css selector",
			"value": selector,
		},
		&ref,
	)
	if err != nil {
		return "", err
	}

	id, ok := ref[elementKey]
	if !ok {
		return "", fmt.Errorf(
			"find element %s: malformed element reference",
			selector,
		)
	}
	return id, nil
}

// executeScript runs a synchronous script in the page and
// decodes the return value into out.
func (c *Client) executeScript(
	ctx context.Context,
	script string,
	args []any,
	out any,
) error {
	if args == nil {
		args = []any{}
	}
	return c.do(
		ctx, http.MethodPost,
		c.sessionPath("/execute/sync"),
		map[string]any{
			"script": script,
			"args":   args,
		},
		out,
	)
}

// elementArg wraps a web element reference for use as a script
// argument.
func elementArg(id string) map[string]string {
	return map[string]string{elementKey: id}
}

func (c *Client) GetCookie(
	ctx context.Context,
	name string,
) (string, bool, error) {
	var cookie struct {
		Value string `json:"value"`
	}
	err := c.do(
		ctx, http.MethodGet,
		c.sessionPath("/cookie/"+url.PathEscape(name)),
		nil,
		&cookie,
	)
	if isCode(err, "no such cookie") {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return cookie.Value, true, nil
}

func (c *Client) CookieExists(
	ctx context.Context,
	name string,
) (bool, error) {
	_, ok, err := c.GetCookie(ctx, name)
	return ok, err
}

func (c *Client) CookieNotExists(
	ctx context.Context,
	name string,
) (bool, error) {
	_, ok, err := c.GetCookie(ctx, name)
	return !ok, err
}

func (c *Client) GetURL(ctx context.Context) (string, error) {
	var u string
	err := c.do(
		ctx, http.MethodGet,
		c.sessionPath("/url"), nil, &u,
	)
	return u, err
}

func (c *Client) GetTitle(ctx context.Context) (string, error) {
	var title string
	err := c.do(
		ctx, http.MethodGet,
		c.sessionPath("/title"), nil, &title,
	)
	return title, err
}

func (c *Client) GetPageHTML(
	ctx context.Context,
) (string, error) {
	var source string
	err := c.do(
		ctx, http.MethodGet,
		c.sessionPath("/source"), nil, &source,
	)
	return source, err
}

func (c *Client) CountElements(
	ctx context.Context,
	selector string,
) (int, error) {
	var refs []map[string]string
	err := c.do(
		ctx, http.MethodPost,
		c.sessionPath("/elements"),
		map[string]any{
			"using": "css selector",
			"value": selector,
		},
		&refs,
	)
	if err != nil {
		return 0, err
	}
	return len(refs), nil
}

func (c *Client) GetAttribute(
	ctx context.Context,
	selector, name string,
) (string, bool, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return "", false, err
	}

	// The remote end returns JSON null for a missing attribute.
	var value *string
	err = c.do(
		ctx, http.MethodGet,
		c.sessionPath(
			"/element/"+id+"/attribute/"+url.PathEscape(name),
		),
		nil,
		&value,
	)
	if err != nil {
		return "", false, err
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

func (c *Client) GetCSSProperty(
	ctx context.Context,
	selector, name string,
) (string, bool, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return "", false, err
	}

	var value string
	err = c.do(
		ctx, http.MethodGet,
		c.sessionPath(
			"/element/"+id+"/css/"+url.PathEscape(name),
		),
		nil,
		&value,
	)
	if err != nil {
		return "", false, err
	}
	// An unknown property computes to the empty string.
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

func (c *Client) GetElementHTML(
	ctx context.Context,
	selector string,
) (string, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return "", err
	}

	var html string
	err = c.do(
		ctx, http.MethodGet,
		c.sessionPath("/element/"+id+"/property/outerHTML"),
		nil,
		&html,
	)
	return html, err
}

func (c *Client) GetText(
	ctx context.Context,
	selector string,
) (string, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return "", err
	}

	var text string
	err = c.do(
		ctx, http.MethodGet,
		c.sessionPath("/element/"+id+"/text"),
		nil,
		&text,
	)
	return text, err
}

func (c *Client) GetValue(
	ctx context.Context,
	selector string,
) (string, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return "", err
	}

	var value string
	err = c.do(
		ctx, http.MethodGet,
		c.sessionPath("/element/"+id+"/property/value"),
		nil,
		&value,
	)
	return value, err
}

func (c *Client) ElementExists(
	ctx context.Context,
	selector string,
) (bool, error) {
	count, err := c.CountElements(ctx, selector)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *Client) ElementEnabled(
	ctx context.Context,
	selector string,
) (bool, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return false, err
	}

	var enabled bool
	err = c.do(
		ctx, http.MethodGet,
		c.sessionPath("/element/"+id+"/enabled"),
		nil,
		&enabled,
	)
	return enabled, err
}

// visibleScript mirrors the displayedness check browsers apply:
// a rendered box and no hidden ancestors.
const visibleScript = `
const el = arguments[0];
if (!el) return false;
const style = window.getComputedStyle(el);
if (style.display === 'none' || style.visibility === 'hidden') {
	return false;
}
const rect = el.getBoundingClientRect();
return rect.width > 0 && rect.height > 0;
`

func (c *Client) ElementVisible(
	ctx context.Context,
	selector string,
) (bool, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return false, err
	}

	var visible bool
	err = c.executeScript(
		ctx, visibleScript,
		[]any{elementArg(id)},
		&visible,
	)
	return visible, err
}

// viewportScript extends the visibility check with a viewport
// intersection test.
const viewportScript = `
const el = arguments[0];
if (!el) return false;
const style = window.getComputedStyle(el);
if (style.display === 'none' || style.visibility === 'hidden') {
	return false;
}
const rect = el.getBoundingClientRect();
if (rect.width <= 0 || rect.height <= 0) return false;
return rect.bottom > 0 && rect.right > 0 &&
	rect.top < window.innerHeight &&
	rect.left < window.innerWidth;
`

func (c *Client) ElementVisibleWithinViewport(
	ctx context.Context,
	selector string,
) (bool, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return false, err
	}

	var visible bool
	err = c.executeScript(
		ctx, viewportScript,
		[]any{elementArg(id)},
		&visible,
	)
	return visible, err
}

func (c *Client) OptionIsSelected(
	ctx context.Context,
	selector string,
) (bool, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return false, err
	}

	var selected bool
	err = c.do(
		ctx, http.MethodGet,
		c.sessionPath("/element/"+id+"/selected"),
		nil,
		&selected,
	)
	return selected, err
}

// elementRect is the W3C "Get Element Rect" payload. The
// coordinates are document-relative.
type elementRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (c *Client) getRect(
	ctx context.Context,
	selector string,
) (elementRect, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return elementRect{}, err
	}

	var rect elementRect
	err = c.do(
		ctx, http.MethodGet,
		c.sessionPath("/element/"+id+"/rect"),
		nil,
		&rect,
	)
	return rect, err
}

func (c *Client) GetElementSize(
	ctx context.Context,
	selector string,
) (session.Size, error) {
	rect, err := c.getRect(ctx, selector)
	if err != nil {
		return session.Size{}, err
	}
	return session.Size{
		Width:  int(rect.Width),
		Height: int(rect.Height),
	}, nil
}

func (c *Client) GetElementPosition(
	ctx context.Context,
	selector string,
) (session.Point, error) {
	rect, err := c.getRect(ctx, selector)
	if err != nil {
		return session.Point{}, err
	}
	return session.Point{
		X: int(rect.X),
		Y: int(rect.Y),
	}, nil
}

// viewPositionScript reports the viewport-relative corner of
// the element.
const viewPositionScript = `
const rect = arguments[0].getBoundingClientRect();
return {x: Math.round(rect.x), y: Math.round(rect.y)};
`

func (c *Client) GetElementViewPosition(
	ctx context.Context,
	selector string,
) (session.Point, error) {
	id, err := c.findElement(ctx, selector)
	if err != nil {
		return session.Point{}, err
	}

	var point session.Point
	err = c.executeScript(
		ctx, viewPositionScript,
		[]any{elementArg(id)},
		&point,
	)
	return point, err
}

// interface guard
var _ session.Session = (*Client)(nil)
