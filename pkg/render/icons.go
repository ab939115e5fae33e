package render

import "github.com/dmitrymomot/mailblocks/pkg/block"

// Static platform and contact icon lookups. These are trusted configuration,
// not user data, so the assembler embeds them without further checks.

const iconBase = "https://static.mailblocks.dev/icons"

var socialIcons = map[block.Platform]string{
	block.PlatformX:         iconBase + "/x.png",
	block.PlatformFacebook:  iconBase + "/facebook.png",
	block.PlatformInstagram: iconBase + "/instagram.png",
	block.PlatformLinkedIn:  iconBase + "/linkedin.png",
	block.PlatformYouTube:   iconBase + "/youtube.png",
}

var contactIcons = map[block.ContactKind]string{
	block.ContactEmail:    iconBase + "/mail.png",
	block.ContactPhone:    iconBase + "/phone.png",
	block.ContactWhatsApp: iconBase + "/whatsapp.png",
	block.ContactWeb:      iconBase + "/globe.png",
}

func socialIconURL(p block.Platform) string {
	if u, ok := socialIcons[p]; ok {
		return u
	}
	return iconBase + "/globe.png"
}

func contactIconURL(k block.ContactKind) string {
	if u, ok := contactIcons[k]; ok {
		return u
	}
	return iconBase + "/mail.png"
}
