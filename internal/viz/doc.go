// Package viz turns animation frames into pictures.
//
// [Render] is the single entry point: it maps a frame, a [Theme] and a
// [Viewport] to a list of [DrawCmd] values. It never touches the frame and
// has no output of its own, so the same commands feed two back ends:
//
//   - [Canvas], a grid of terminal cells painted with lipgloss colors, used
//     by the interactive player and the plain `run` view
//   - the SVG writer in the export package
//
// Themes map semantic roles such as compare, swap or found to colors. The
// light and dark palettes are the web player's; the rest are terminal
// palettes. [Styles] derives the TUI chrome from a theme.
package viz
