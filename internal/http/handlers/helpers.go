package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/erp-backend/internal/domain/aggregates"
	"github.com/yungbote/erp-backend/internal/http/response"
	"github.com/yungbote/erp-backend/internal/platform/apierr"
)

var errIDMismatch = errors.New("path id does not match body id")

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid id %q", raw))
		return 0, false
	}
	return id, true
}

func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return false
	}
	return true
}

// respondStoreError writes the envelope for a coded service error.
func respondStoreError(c *gin.Context, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		response.RespondError(c, ae.Status, ae.Code, ae.Err)
		return
	}
	ae = apierr.FromCode(string(domainagg.CodeOf(err)), err)
	response.RespondError(c, ae.Status, ae.Code, ae.Err)
}

func respondNotFound(c *gin.Context, kind string, id int64) {
	response.RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("%s %d not found", kind, id))
}

func location(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}
