package consts

const (
	MIMETextPlain   = "text/plain"
	MIMEOctetStream = "application/octet-stream"
	MIMEFormData    = "application/x-www-form-urlencoded"
	MIMEJSON        = "application/json"
	MIMEXML         = "application/xml"
	MIMEHTML        = "text/html"
	MIMECSS         = "text/css"
	MIMECSV         = "text/csv"
	MIMEJS          = "text/javascript"
)
