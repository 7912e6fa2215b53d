package slider

// Glyphs for the filled part of a bar.
const (
	FilledThickLine      = "━"
	FilledThinLine       = "─"
	FilledDoubleLine     = "═"
	FilledBlock          = "█"
	FilledDarkShade      = "▓"
	FilledMediumShade    = "▒"
	FilledLightShade     = "░"
	FilledBar            = "▬"
	FilledProgress       = "▰"
	FilledBraille        = "⣿"
	FilledWave           = "≈"
	FilledDiamond        = "◆"
	FilledHash           = "#"
	FilledEquals         = "="
	FilledLowerBar       = "▂"
	FilledStar           = "★"
	FilledPlus           = "+"
	FilledAsterisk       = "*"
	FilledVerticalRect   = "▮"
	FilledSquare         = "■"
	FilledCircle         = "●"
	FilledVerticalBar    = "│"
	FilledSegment        = "─"
	FilledVerticalLine   = "│"
	FilledHorizontalLine = "─"
)

// Glyphs for the empty part of a bar.
const (
	EmptyThinLine       = "─"
	EmptySpace          = " "
	EmptyLightShade     = "░"
	EmptyDotted         = "┄"
	EmptySegment        = "─"
	EmptyDashed         = "╌"
	EmptyDoubleThin     = "─"
	EmptyProgress       = "▱"
	EmptyBraille        = "⣀"
	EmptyWave           = "˜"
	EmptyDiamond        = "◇"
	EmptyDot            = "."
	EmptyHyphen         = "-"
	EmptyUnderscore     = "_"
	EmptyLowerBar       = "▁"
	EmptyStar           = "☆"
	EmptyBarOutline     = "▭"
	EmptySquare         = "□"
	EmptyCircle         = "○"
	EmptyVerticalBar    = "│"
	EmptyColon          = ":"
	EmptyVerticalLine   = "│"
	EmptyHorizontalLine = "─"
)

// Glyphs for the handle (thumb).
const (
	HandleCircle         = "●"
	HandleWhiteCircle    = "○"
	HandleDoubleCircle   = "◉"
	HandleLargeCircle    = "◯"
	HandleBullseye       = "◎"
	HandleBlackCircle    = "⬤"
	HandleSquare         = "■"
	HandleWhiteSquare    = "□"
	HandleSmallSquare    = "▪"
	HandleMediumBlock    = "▓"
	HandleDiamond        = "◆"
	HandleWhiteDiamond   = "◇"
	HandleDoubleDiamond  = "◈"
	HandleTriangleRight  = "▶"
	HandleTriangleLeft   = "◀"
	HandleTriangleUp     = "▲"
	HandleTriangleDown   = "▼"
	HandleVerticalBar    = "│"
	HandlePipe           = "|"
	HandleAt             = "@"
	HandleStar           = "✦"
	HandleSparkle        = "✨"
	HandleWhiteStar      = "☆"
	HandleFilledStar     = "★"
	HandleHexagon        = "⬢"
	HandleOctagon        = "⬣"
	HandleLowerBar       = "▃"
	HandleArrowUp        = "↑"
	HandleArrowDown      = "↓"
	HandleArrowLeft      = "←"
	HandleArrowRight     = "→"
	HandleHorizontalLine = "━"
	HandleVerticalLine   = "│"
)

// SymbolSet groups the three glyphs a slider draws with.
type SymbolSet struct {
	Filled string
	Empty  string
	Handle string
}

// Predefined symbol sets.
var (
	SymbolsDefault          = SymbolSet{FilledThickLine, EmptyThinLine, HandleCircle}
	SymbolsBlock            = SymbolSet{FilledBlock, FilledLightShade, FilledDarkShade}
	SymbolsDotted           = SymbolSet{FilledBraille, EmptyBraille, HandleBlackCircle}
	SymbolsMinimal          = SymbolSet{FilledThinLine, EmptySpace, HandleVerticalBar}
	SymbolsDoubleLine       = SymbolSet{FilledDoubleLine, EmptyThinLine, HandleDoubleCircle}
	SymbolsWave             = SymbolSet{FilledWave, EmptyWave, HandleDoubleDiamond}
	SymbolsProgress         = SymbolSet{FilledProgress, EmptyProgress, HandleTriangleRight}
	SymbolsThick            = SymbolSet{FilledBar, FilledBar, HandleSquare}
	SymbolsGradient         = SymbolSet{FilledDarkShade, FilledLightShade, HandleCircle}
	SymbolsRounded          = SymbolSet{FilledThinLine, EmptyDashed, HandleLargeCircle}
	SymbolsRetro            = SymbolSet{FilledHash, EmptyDot, HandleAt}
	SymbolsNeon             = SymbolSet{FilledLowerBar, EmptyLowerBar, HandleLowerBar}
	SymbolsDiamond          = SymbolSet{FilledDiamond, EmptyDiamond, HandleDoubleDiamond}
	SymbolsStar             = SymbolSet{FilledStar, EmptyStar, HandleFilledStar}
	SymbolsArrow            = SymbolSet{FilledBar, EmptyBarOutline, HandleDiamond}
	SymbolsSegmented        = SymbolSet{FilledSegment, EmptySpace, HandleCircle}
	SymbolsSegmentedBlocks  = SymbolSet{FilledVerticalBar, EmptyVerticalBar, HandleCircle}
	SymbolsSegmentedDots    = SymbolSet{FilledCircle, EmptyCircle, HandleCircle}
	SymbolsSegmentedSquares = SymbolSet{FilledSquare, EmptySquare, HandleCircle}

	SymbolsVertical         = SymbolSet{FilledVerticalLine, EmptyVerticalLine, HandleHorizontalLine}
	SymbolsVerticalBlocks   = SymbolSet{FilledBlock, EmptyVerticalBar, HandleHorizontalLine}
	SymbolsVerticalGradient = SymbolSet{FilledDarkShade, FilledLightShade, HandleHorizontalLine}
	SymbolsVerticalDots     = SymbolSet{FilledCircle, EmptyCircle, HandleHorizontalLine}
	SymbolsVerticalSquares  = SymbolSet{FilledSquare, EmptySquare, HandleHorizontalLine}

	SymbolsHorizontal         = SymbolSet{FilledHorizontalLine, EmptyHorizontalLine, HandleVerticalLine}
	SymbolsHorizontalThick    = SymbolSet{FilledThickLine, EmptyThinLine, HandleCircle}
	SymbolsHorizontalBlocks   = SymbolSet{FilledBlock, FilledLightShade, HandleCircle}
	SymbolsHorizontalGradient = SymbolSet{FilledDarkShade, FilledLightShade, HandleCircle}
	SymbolsHorizontalDots     = SymbolSet{FilledCircle, EmptyCircle, HandleCircle}
	SymbolsHorizontalSquares  = SymbolSet{FilledSquare, EmptySquare, HandleCircle}
)
