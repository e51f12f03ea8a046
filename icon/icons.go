package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Push
	Pop
	Lua
	Empty
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✖",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "🟨",
	},
	Push: {
		emoji:   "📥",
		nerd:    "",
		plain:   "+",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "🟦",
	},
	Pop: {
		emoji:   "📤",
		nerd:    "",
		plain:   "-",
		kaomoji: "(ﾉ´ヮ`)ﾉ",
		squares: "🟪",
	},
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "λ",
		kaomoji: "(￣ω￣)",
		squares: "🟫",
	},
	Empty: {
		emoji:   "🫙",
		nerd:    "",
		plain:   "∅",
		kaomoji: "(・・;)",
		squares: "⬜",
	},
}
