package content

import (
	"testing"

	"glowhaus/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildSocialURL(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		platform string
		want     string
	}{
		{name: "instagram handle", value: "brendasalon", platform: "instagram", want: "https://instagram.com/brendasalon"},
		{name: "facebook page", value: "brendasalon", platform: "facebook", want: "https://facebook.com/brendasalon"},
		{name: "youtube handle with at", value: "@brendasalon", platform: "youtube", want: "https://youtube.com/@brendasalon"},
		{name: "youtube handle without at", value: "brendasalon", platform: "youtube", want: "https://youtube.com/@brendasalon"},
		{name: "tiktok handle", value: "brendasalon", platform: "tiktok", want: "https://tiktok.com/@brendasalon"},
		{name: "full url passes through", value: "https://instagram.com/someone", platform: "instagram", want: "https://instagram.com/someone"},
		{name: "unknown platform passes value", value: "brendasalon", platform: "myspace", want: "brendasalon"},
		{name: "empty value", value: "", platform: "instagram", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSocialURL(tt.value, tt.platform))
		})
	}
}

func TestResolveSocialLinks(t *testing.T) {
	got := ResolveSocialLinks(models.SocialLinks{
		Instagram: "brendasalon",
		TikTok:    "brendasalon",
		YouTube:   "@brendasalon",
		Facebook:  "https://facebook.com/brendasalon",
	})

	assert.Equal(t, "https://instagram.com/brendasalon", got.Instagram)
	assert.Equal(t, "https://tiktok.com/@brendasalon", got.TikTok)
	assert.Equal(t, "https://youtube.com/@brendasalon", got.YouTube)
	assert.Equal(t, "https://facebook.com/brendasalon", got.Facebook)
}

func TestWhatsAppURL(t *testing.T) {
	got := WhatsAppURL("254700000000", "Hello, I would like to book an appointment.")
	assert.Equal(t, "https://wa.me/254700000000?text=Hello%2C+I+would+like+to+book+an+appointment.", got)

	assert.Equal(t, "https://wa.me/254700000000", WhatsAppURL("254700000000", ""))
	assert.Equal(t, "", WhatsAppURL("", "hi"))
}

func TestPhoneURL(t *testing.T) {
	assert.Equal(t, "tel:+254700000000", PhoneURL("254700000000"))
	assert.Equal(t, "", PhoneURL(""))
}
