// Package server implements the marquee serve mode: it exposes a local
// directory of video files through the same catalog API the watch mode
// consumes.
package server

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/marquee-tv/marquee/internal/library"
)

// videoExtensions are the file types listed in the catalog.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".webm": {},
	".mkv":  {},
	".avi":  {},
	".mov":  {},
}

// scanCatalog lists the video files directly inside dir, sorted by name. The
// returned entry URLs are server-relative, matching what the client expects.
func scanCatalog(dir string) ([]library.Video, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read media dir: %w", err)
	}

	var videos []library.Video
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := videoExtensions[ext]; !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		videos = append(videos, library.Video{
			Name: entry.Name(),
			Size: info.Size(),
			URL:  "/videos/" + url.PathEscape(entry.Name()),
		})
	}

	sort.Slice(videos, func(i, j int) bool { return videos[i].Name < videos[j].Name })
	return videos, nil
}
