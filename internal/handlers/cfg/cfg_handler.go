// internal/handlers/cfg/cfg_handler.go
package cfg

import (
	"net/http"

	"hotpromo-service/internal/domain/campaign"
	"hotpromo-service/internal/pkg/cfglang"
	"hotpromo-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// CfgHandler exposes the config mini-language codec on its own, for editors
// that keep their list state client-side.
type CfgHandler struct{}

func NewCfgHandler() *CfgHandler {
	return &CfgHandler{}
}

type parseRequest struct {
	Text string `json:"text"`
}

// codecResult carries both forms so a client can show the canonical text
// next to the entries it produced.
type codecResult struct {
	Text    string      `json:"text"`
	Entries interface{} `json:"entries"`
}

// Options lists the known config names and point types.
func (h *CfgHandler) Options(c *gin.Context) {
	response.Success(c, http.StatusOK, "options retrieved successfully", campaign.Options())
}

// Parse turns inline text into entries. Malformed fragments are dropped.
func (h *CfgHandler) Parse(c *gin.Context) {
	kind, err := cfglang.ParseKind(c.Param("kind"))
	if err != nil {
		response.ValidationError(c, "invalid config kind", err)
		return
	}

	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	var result codecResult
	switch kind {
	case cfglang.KindNumber:
		entries := cfglang.ParseNumber(req.Text)
		result = codecResult{Text: cfglang.SerializeNumber(entries), Entries: entries}
	case cfglang.KindRange:
		entries := cfglang.ParseRange(req.Text)
		result = codecResult{Text: cfglang.SerializeRange(entries), Entries: entries}
	case cfglang.KindString:
		entries := cfglang.ParseString(req.Text)
		result = codecResult{Text: cfglang.SerializeString(entries), Entries: entries}
	}

	response.Success(c, http.StatusOK, "config parsed successfully", result)
}

// Serialize renders entries as inline text. The body is {"entries": [...]}
// in wire shape; entries are normalized the same way a loaded document is.
func (h *CfgHandler) Serialize(c *gin.Context) {
	kind, err := cfglang.ParseKind(c.Param("kind"))
	if err != nil {
		response.ValidationError(c, "invalid config kind", err)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	if !gjson.ValidBytes(body) {
		response.ValidationError(c, "request body must be JSON", nil)
		return
	}
	raw := gjson.GetBytes(body, "entries")
	if !raw.IsArray() {
		response.ValidationError(c, "entries must be an array", nil)
		return
	}

	var result codecResult
	switch kind {
	case cfglang.KindNumber:
		entries := cfglang.NormalizeNumber(raw)
		result = codecResult{Text: cfglang.SerializeNumber(entries), Entries: entries}
	case cfglang.KindRange:
		entries := cfglang.NormalizeRange(raw)
		result = codecResult{Text: cfglang.SerializeRange(entries), Entries: entries}
	case cfglang.KindString:
		entries := cfglang.NormalizeString(raw)
		result = codecResult{Text: cfglang.SerializeString(entries), Entries: entries}
	}

	response.Success(c, http.StatusOK, "config serialized successfully", result)
}
