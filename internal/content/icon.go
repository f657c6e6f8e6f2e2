package content

// Icon identifies one of the glyphs the page uses. The set is closed; the
// rendering layer maps each value to an icon-font name.
type Icon int

const (
	IconNone Icon = iota
	IconMenu
	IconClose
	IconArrowRight
	IconSparkles
	IconClock
	IconFileText
	IconAlertTriangle
	IconTrendingDown
	IconBrain
	IconZap
	IconTarget
	IconDatabase
	IconFileSearch
	IconCalculator
	IconMapPin
	IconBarChart
	IconShield
	IconLayers
	IconDownload
	IconUpload
	IconCpu
	IconLineChart
	IconCheckCircle
	IconTrendingUp
	IconDollarSign
	IconUsers
	IconAward
	IconSend
	IconBuilding
	IconMail
	IconUser
	IconPhone
	IconLinkedin
	IconTwitter

	iconCount
)

var iconLabels = [...]string{
	IconNone:          "none",
	IconMenu:          "menu",
	IconClose:         "close",
	IconArrowRight:    "arrow-right",
	IconSparkles:      "sparkles",
	IconClock:         "clock",
	IconFileText:      "file-text",
	IconAlertTriangle: "alert-triangle",
	IconTrendingDown:  "trending-down",
	IconBrain:         "brain",
	IconZap:           "zap",
	IconTarget:        "target",
	IconDatabase:      "database",
	IconFileSearch:    "file-search",
	IconCalculator:    "calculator",
	IconMapPin:        "map-pin",
	IconBarChart:      "bar-chart",
	IconShield:        "shield",
	IconLayers:        "layers",
	IconDownload:      "download",
	IconUpload:        "upload",
	IconCpu:           "cpu",
	IconLineChart:     "line-chart",
	IconCheckCircle:   "check-circle",
	IconTrendingUp:    "trending-up",
	IconDollarSign:    "dollar-sign",
	IconUsers:         "users",
	IconAward:         "award",
	IconSend:          "send",
	IconBuilding:      "building",
	IconMail:          "mail",
	IconUser:          "user",
	IconPhone:         "phone",
	IconLinkedin:      "linkedin",
	IconTwitter:       "twitter",
}

// Valid reports whether i is a known, non-empty icon.
func (i Icon) Valid() bool {
	return i > IconNone && i < iconCount
}

func (i Icon) String() string {
	if i < IconNone || i >= iconCount {
		return "unknown"
	}
	return iconLabels[i]
}

// Icons returns every valid icon in declaration order.
func Icons() []Icon {
	out := make([]Icon, 0, int(iconCount)-1)
	for i := IconNone + 1; i < iconCount; i++ {
		out = append(out, i)
	}
	return out
}

// Tone selects which brand color a card is drawn in.
type Tone string

const (
	ToneAccent    Tone = "accent"
	ToneSecondary Tone = "secondary"
)
