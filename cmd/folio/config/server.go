package config

import (
	"github.com/folio-cms/folio"
)

// multipartOverhead is added to the upload size limit to get the request
// body limit, leaving room for the multipart framing
const multipartOverhead = 1 << 20

var defaultServerConf = folio.ServerConf{
	Port: 8080,
	CORS: folio.CORSConf{
		AllowOrigins: []string{"http://localhost:3000"},
	},
}
