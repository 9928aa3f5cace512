// README: Static trip-image serving.
package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	dir string
}

func NewImageHandler(dir string) *ImageHandler {
	return &ImageHandler{dir: dir}
}

// Get handles GET /trip-images/:filename. A resolved path that does not
// exist on disk is a plain not-found, never an error.
func (h *ImageHandler) Get(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, "/\\") {
		writeFailure(c, http.StatusBadRequest, "invalid filename", "")
		return
	}

	path := filepath.Join(h.dir, filename)
	if _, err := os.Stat(path); err != nil {
		writeFailure(c, http.StatusNotFound, "Image not found", "")
		return
	}
	c.File(path)
}
