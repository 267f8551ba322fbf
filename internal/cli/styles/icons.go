package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconCursor   = "" // chevron-right

	// Tabs / windows
	IconSession  = "" // window
	IconTab      = "" // table
	IconPin      = "" // thumb-tack
	IconMute     = "" // volume-off
	IconLoading  = "" // spinner
	IconFolder   = "" // folder
	IconActive   = "" // circle
	IconPlay     = "" // play
	IconRestore  = "" // rotate-left
	IconExpand   = "" // expand
	IconCollapse = "" // compress
)
