package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe    = "\uf0ac" // browser/web
	IconVersion  = "\uf02b" // tag
	IconCalendar = "\uf073" // calendar
	IconHeart    = "\uf004" // heart
	IconGo       = "\ue627" // go gopher
	IconArrow    = "\uf061" // arrow right
	IconLock     = "\uf023" // lock
	IconUnlock   = "\uf09c" // unlock
	IconStar     = "\uf005" // star
	IconSearch   = "\uf002" // search
	IconFile     = "\uf15b" // file
	IconHome     = "\uf015" // home
	IconTrash    = "\uf1f8" // trash
	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconUser     = "\uf007" // user
	IconWarning  = "\uf071" // warning
	IconCheck    = "\uf00c" // check
	IconScale    = "\uf24e" // balance scale
)

const (
	cursorEmpty    = "  "
	cursorSelected = "\u25b8 " // black right-pointing small triangle
)
