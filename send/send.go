// Package send provides content-type helpers for common response bodies.
package send

import (
	"encoding/json"
	"net/url"

	"github.com/rohanthewiz/sweb"
	"github.com/rohanthewiz/sweb/consts"
)

// CSS sends the body with the content type set to `text/css`.
func CSS(ctx sweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMECSS)
	_, err := ctx.WriteString(body)
	return err
}

// CSV sends the body with the content type set to `text/csv`.
func CSV(ctx sweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMECSV)
	_, err := ctx.WriteString(body)
	return err
}

// HTML sends the body with the content type set to `text/html`.
func HTML(ctx sweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEHTML)
	_, err := ctx.WriteString(body)
	return err
}

// File sends the body as a download with the given filename.
func File(ctx sweb.Context, filename string, body []byte) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEOctetStream)
	ctx.Response().SetHeader(consts.HeaderContentDisposition, "attachment; filename="+url.QueryEscape(filename))
	ctx.Response().SetHeader("x-filename", url.QueryEscape(filename))
	ctx.Response().SetHeader("Content-Description", "File Transfer")
	ctx.Response().SetHeader("Content-Transfer-Encoding", "binary")
	ctx.Response().SetHeader(consts.HeaderExpires, "0")
	ctx.Response().SetHeader(consts.HeaderCacheControl, "must-revalidate")
	ctx.Response().SetHeader(consts.HeaderPragma, "public")
	ctx.Response().SetHeader(consts.HeaderAccessControlExposeHeaders, "x-filename")
	return ctx.Bytes(body)
}

// JS sends the body with the content type set to `text/javascript`.
func JS(ctx sweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEJS)
	_, err := ctx.WriteString(body)
	return err
}

// JSON encodes the object in JSON format and sends it with the content type set to `application/json`.
func JSON(ctx sweb.Context, object any) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEJSON)
	return json.NewEncoder(ctx.Response()).Encode(object)
}

// Text sends the body with the content type set to `text/plain`.
func Text(ctx sweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMETextPlain)
	_, err := ctx.WriteString(body)
	return err
}

// XML sends the body with the content type set to `application/xml`.
func XML(ctx sweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEXML)
	_, err := ctx.WriteString(body)
	return err
}
