package block

// ContactKind identifies the channel of a help-section contact item.
type ContactKind string

const (
	ContactEmail    ContactKind = "email"
	ContactPhone    ContactKind = "phone"
	ContactWhatsApp ContactKind = "whatsapp"
	ContactWeb      ContactKind = "web"
)

// ContactItem is one icon+link row in the help section.
type ContactItem struct {
	Kind  ContactKind
	Label string
	Value string
	Href  string
}

// Platform identifies a social network in the footer.
type Platform string

const (
	PlatformX         Platform = "x"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
)

// SocialLink is one social icon cell in the footer.
type SocialLink struct {
	Platform Platform
	URL      string
}

// Header is the fixed top section. When LogoURL is empty the renderer falls
// back to FallbackText.
type Header struct {
	LogoURL      string
	LogoHeight   int // px, default 32
	FallbackText string
}

// HelpSection is the optional "need help" section between the body and the
// compliance text.
type HelpSection struct {
	Title       string
	Description string
	Contacts    []ContactItem
}

// ComplianceSection carries the legal text that is always rendered.
// RegistrationNumber and SandboxNotice are optional.
type ComplianceSection struct {
	LegalText          string
	RegistrationNumber string
	SandboxNotice      string
}

// Footer is the fixed bottom section.
type Footer struct {
	LogoURL     string
	CompanyName string
	Address     string
	Social      []SocialLink
}

// EmailDocument is an ordered sequence of body blocks plus the four fixed
// sections. The render core treats it as read-only input.
type EmailDocument struct {
	Template   string
	Subject    string
	Blocks     []Block
	Header     Header
	Help       *HelpSection
	Compliance ComplianceSection
	Footer     Footer
}
