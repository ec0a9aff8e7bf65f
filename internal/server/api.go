package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marquee-tv/marquee/internal/library"
	"github.com/marquee-tv/marquee/internal/logging"
)

// API handles the catalog HTTP endpoints.
type API struct {
	dir string
}

// NewAPI creates an API serving video files from dir.
func NewAPI(dir string) *API {
	return &API{dir: dir}
}

// Videos returns the current catalog. The directory is rescanned per request
// so the listing always reflects what is on disk.
func (a *API) Videos(c *gin.Context) {
	videos, err := scanCatalog(a.dir)
	if err != nil {
		logging.L().WithError(err).Error("catalog scan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, library.CatalogResponse{Videos: videos})
}

// Serve streams one video file. Range requests are handled by net/http's
// file serving underneath gin; nothing here reads the file itself.
func (a *API) Serve(c *gin.Context) {
	name := c.Param("name")
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video name"})
		return
	}

	path := filepath.Join(a.dir, name)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}
	c.File(path)
}
