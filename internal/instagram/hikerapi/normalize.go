package hikerapi

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/orgball2608/insta-repost-curator/internal/domain"
	"github.com/orgball2608/insta-repost-curator/internal/instagram"
)

const permalinkFormat = "https://www.instagram.com/p/%s/"

// Envelope keys that may wrap the media array, in lookup order.
var envelopeKeys = []string{"data", "items"}

// ExtractMediaItems returns the raw media objects of a response body.
// Accepted shapes are a bare array or an object holding the array under "data" or "items".
func ExtractMediaItems(body []byte) ([][]byte, error) {
	_, dataType, _, err := jsonparser.Get(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", instagram.ErrInvalidJSON, err)
	}

	var list []byte
	switch dataType {
	case jsonparser.Array:
		list = body
	case jsonparser.Object:
		for _, key := range envelopeKeys {
			value, vt, _, err := jsonparser.Get(body, key)
			if err == nil && vt == jsonparser.Array {
				list = value
				break
			}
		}
	}
	if list == nil {
		return nil, instagram.ErrUnexpectedShape
	}

	var items [][]byte
	_, err = jsonparser.ArrayEach(list, func(value []byte, vt jsonparser.ValueType, _ int, _ error) {
		if vt == jsonparser.Object {
			items = append(items, value)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", instagram.ErrInvalidJSON, err)
	}

	return items, nil
}

// NormalizeMedia maps one raw media object onto a Post. For every field the first
// present alternate wins. It returns false for items without an id or a media URL.
func NormalizeMedia(item []byte) (domain.Post, bool) {
	id := firstString(item, []string{"pk"}, []string{"id"}, []string{"code"})
	if id == "" {
		return domain.Post{}, false
	}

	displayURL := firstString(item,
		[]string{"image_versions2", "candidates", "[0]", "url"},
		[]string{"display_url"},
		[]string{"thumbnail_url"},
	)
	if displayURL == "" {
		return domain.Post{}, false
	}

	username := firstString(item,
		[]string{"user", "username"},
		[]string{"user", "name"},
		[]string{"owner", "username"},
		[]string{"owner", "name"},
	)
	if username == "" {
		username = "user_" + id
	}

	shortcode := firstString(item, []string{"code"}, []string{"shortcode"})
	if shortcode == "" {
		shortcode = id
	}

	return domain.Post{
		ID:             id,
		Shortcode:      shortcode,
		URL:            fmt.Sprintf(permalinkFormat, shortcode),
		AuthorUsername: username,
		Caption:        caption(item),
		DisplayURL:     displayURL,
		IsVideo:        isVideo(item),
		LikesCount:     firstCount(item, "like_count", "likes_count"),
		CommentsCount:  firstCount(item, "comment_count", "comments_count"),
	}, true
}

func caption(item []byte) string {
	if text := lookupString(item, "caption", "text"); text != "" {
		return text
	}
	return lookupString(item, "caption")
}

func isVideo(item []byte) bool {
	if mediaType, err := jsonparser.GetInt(item, "media_type"); err == nil && mediaType == 2 {
		return true
	}
	if video, err := jsonparser.GetBoolean(item, "is_video"); err == nil && video {
		return true
	}
	kind, err := jsonparser.GetString(item, "type")
	return err == nil && kind == "video"
}

func firstString(item []byte, paths ...[]string) string {
	for _, path := range paths {
		if s := strings.TrimSpace(lookupString(item, path...)); s != "" {
			return s
		}
	}
	return ""
}

// lookupString returns string values unescaped and numbers verbatim. Other types yield "".
func lookupString(item []byte, keys ...string) string {
	value, dataType, _, err := jsonparser.Get(item, keys...)
	if err != nil {
		return ""
	}
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return ""
		}
		return s
	case jsonparser.Number:
		return string(value)
	default:
		return ""
	}
}

// firstCount returns the first numeric count found, clamped at zero.
func firstCount(item []byte, keys ...string) int {
	for _, key := range keys {
		value, dataType, _, err := jsonparser.Get(item, key)
		if err != nil || dataType != jsonparser.Number {
			continue
		}
		n, err := jsonparser.ParseInt(value)
		if err != nil {
			f, ferr := jsonparser.ParseFloat(value)
			if ferr != nil {
				continue
			}
			n = int64(f)
		}
		if n < 0 {
			return 0
		}
		return int(n)
	}
	return 0
}
