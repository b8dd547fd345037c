package content

import (
	"net/url"
	"strings"

	"glowhaus/models"
)

// BuildSocialURL turns a stored handle into a canonical profile URL for
// the given platform. Values that already look like URLs pass through
// unchanged.
func BuildSocialURL(value, platform string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http") {
		return value
	}
	switch platform {
	case "instagram":
		return "https://instagram.com/" + value
	case "facebook":
		return "https://facebook.com/" + value
	case "youtube":
		if strings.HasPrefix(value, "@") {
			return "https://youtube.com/" + value
		}
		return "https://youtube.com/@" + value
	case "tiktok":
		return "https://tiktok.com/@" + strings.TrimPrefix(value, "@")
	default:
		return value
	}
}

// ResolveSocialLinks maps every stored handle to its profile URL.
func ResolveSocialLinks(links models.SocialLinks) models.SocialLinks {
	return models.SocialLinks{
		Instagram: BuildSocialURL(links.Instagram, "instagram"),
		TikTok:    BuildSocialURL(links.TikTok, "tiktok"),
		YouTube:   BuildSocialURL(links.YouTube, "youtube"),
		Facebook:  BuildSocialURL(links.Facebook, "facebook"),
	}
}

// WhatsAppURL builds a click-to-chat link with a templated greeting.
// The stored number carries no leading plus.
func WhatsAppURL(number, greeting string) string {
	if number == "" {
		return ""
	}
	u := "https://wa.me/" + number
	if greeting != "" {
		u += "?text=" + url.QueryEscape(greeting)
	}
	return u
}

// PhoneURL builds a click-to-call link from the stored contact number.
func PhoneURL(number string) string {
	if number == "" {
		return ""
	}
	return "tel:+" + number
}
