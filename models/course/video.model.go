package course

import (
	"strings"

	"gorm.io/gorm"
)

// Video represents an embedded lesson video within a module
type Video struct {
	gorm.Model
	ModuleID     uint   `json:"module_id" gorm:"index;not null"`
	Title        string `json:"title"`
	YoutubeURL   string `json:"youtube_url" gorm:"not null"`
	AllowEmbed   bool   `json:"allow_embed" gorm:"default:true"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`
}

// videoID extracts the YouTube video identifier from the stored URL.
// Two recognized shapes: full watch links (watch?v=ID&...) and short
// youtu.be links, where the identifier is the final path segment. The
// short-link branch does not strip trailing query parameters, matching
// the behavior of the system this was ported from. Unknown shapes yield "".
func (v Video) videoID() string {
	if strings.Contains(v.YoutubeURL, "watch?v=") {
		parts := strings.Split(v.YoutubeURL, "watch?v=")
		return strings.Split(parts[len(parts)-1], "&")[0]
	}
	if strings.Contains(v.YoutubeURL, "youtu.be/") {
		parts := strings.Split(v.YoutubeURL, "/")
		return parts[len(parts)-1]
	}
	return ""
}

// EmbedURL maps the stored YouTube URL to a player-frame URL. URLs with no
// recognized shape pass through unchanged.
func (v Video) EmbedURL() string {
	if id := v.videoID(); id != "" {
		return "https://www.youtube.com/embed/" + id
	}
	return v.YoutubeURL
}

// Thumbnail derives the YouTube thumbnail URL, or "" when the stored URL has
// no recognized shape.
func (v Video) Thumbnail() string {
	id := v.videoID()
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
