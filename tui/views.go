package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"iretro/core"
	"iretro/store"
)

var themeNames = store.Themes

// listTop is the content row the first list item of a view sits on; rows
// above it hold the view's header. Mouse row hit-testing depends on it.
const listTop = 2

var menuItems = []string{"Now Playing", "Search", "Liked Songs", "Settings", "Account"}

const (
	menuNowPlaying = iota
	menuSearch
	menuLiked
	menuSettings
	menuAccount
)

// fitLines caps a view's lines to the leaf height. Width is enforced by
// the renderers before styling so escape codes never get cut.
func fitLines(lines []string, height int) string {
	if height <= 0 {
		return ""
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// adjustScroll keeps the selected row inside the visible window: snap up
// when above, slide down when below.
func adjustScroll(selected, count, visible, offset int) int {
	if visible <= 0 || count <= visible {
		return 0
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+visible {
		offset = selected - visible + 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func trackLabel(t core.Track) string {
	label := t.Title
	if a := t.DisplayArtist(); a != "" {
		label += " - " + a
	}
	if d := core.FormatDuration(t.DurationSecs); d != "" {
		label += " (" + d + ")"
	}
	return label
}

// renderList renders items from listTop with the given scroll offset, the
// cursor row in the selected style with a "> " marker.
func renderList(st styleSet, items []string, selected, offset, width, visible int) []string {
	var lines []string
	end := offset + visible
	if end > len(items) {
		end = len(items)
	}
	for i := offset; i < end; i++ {
		text := truncate(items[i], width-2)
		if i == selected {
			lines = append(lines, st.selectedItem.Render("> "+text))
		} else {
			lines = append(lines, st.normalItem.Render("  "+text))
		}
	}
	if len(items) > visible {
		lines = append(lines, st.mutedText.Render(fmt.Sprintf("[%d/%d]", selected+1, len(items))))
	}
	return lines
}

func (m *Model) renderMenu(width, height int) []string {
	lines := make([]string, 0, height)
	if t := m.engine.Current(); t != nil {
		lines = append(lines, m.styles.mutedText.Render(truncate("♪ "+t.Title, width)))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "")
	lines = append(lines, renderList(m.styles, menuItems, int(m.menuCursor), 0, width, height-listTop)...)
	return lines
}

func (m *Model) renderNowPlaying(width, height int) []string {
	t := m.engine.Current()
	if t == nil {
		if cur := m.queue.Current(); cur != nil {
			t = cur
		}
	}
	if t == nil {
		return []string{
			"",
			m.styles.normalItem.Render("  Nothing playing"),
			"",
			m.styles.mutedText.Render("  Pick a song from Search or Liked Songs"),
		}
	}

	liked := "♡ like (l)"
	if m.liked.IsLiked(t.ID) {
		liked = "♥ liked"
	}

	var state string
	switch {
	case m.loadErr != "":
		state = m.styles.errorText.Render(truncate("  "+m.loadErr, width))
	case m.loading:
		state = m.styles.mutedText.Render("  Loading...")
	case !m.engine.Playing():
		state = m.styles.mutedText.Render("  Paused")
	default:
		state = m.styles.mutedText.Render(fmt.Sprintf("  Track %d of %d", m.queue.Position()+1, m.queue.Len()))
	}

	lines := []string{
		"",
		m.styles.selectedItem.Render(truncate("  "+t.Title, width)),
		m.styles.mutedText.Render(truncate("  "+t.DisplayArtist(), width)),
		"",
		m.styles.normalItem.Render("  " + liked),
		"",
		"  " + m.progressLine(width-4),
		"",
		state,
	}

	if m.lyricsText != "" && height > len(lines)+2 {
		lines = append(lines, "")
		for _, l := range strings.Split(m.lyricsText, "\n") {
			if len(lines) >= height {
				break
			}
			lines = append(lines, m.styles.mutedText.Render(truncate("  "+l, width)))
		}
	}
	return lines
}

// progressLine is the elapsed / bar / total readout.
func (m *Model) progressLine(width int) string {
	pos := m.engine.Position()
	dur := m.engine.Duration()

	elapsed := core.FormatTime(pos.Seconds())
	total := core.FormatTime(dur.Seconds())

	barWidth := width - runewidth.StringWidth(elapsed) - runewidth.StringWidth(total) - 2
	if barWidth < 4 {
		barWidth = 4
	}
	filled := 0
	if dur > 0 {
		filled = int(float64(barWidth) * pos.Seconds() / dur.Seconds())
		if filled > barWidth {
			filled = barWidth
		}
	}
	bar := m.styles.progressFill.Render(strings.Repeat("█", filled)) +
		m.styles.progressRest.Render(strings.Repeat("░", barWidth-filled))
	return elapsed + " " + bar + " " + total
}

func (m *Model) renderSearch(width, height int) []string {
	lines := make([]string, 0, height)
	lines = append(lines, m.searchInput.View())

	if len(m.search.results) == 0 {
		style := m.styles.mutedText
		if m.search.state == searchFailed {
			style = m.styles.errorText
		}
		lines = append(lines, "", style.Render(truncate(m.search.message, width)))
		return lines
	}

	lines = append(lines, "")
	items := make([]string, len(m.search.results))
	for i, t := range m.search.results {
		items[i] = trackLabel(t)
	}
	visible := height - listTop
	m.searchScroll = adjustScroll(int(m.searchCursor), len(items), visible, m.searchScroll)
	lines = append(lines, renderList(m.styles, items, int(m.searchCursor), m.searchScroll, width, visible)...)
	return lines
}

func (m *Model) renderLiked(width, height int) []string {
	songs := m.liked.All()
	lines := make([]string, 0, height)

	if len(songs) == 0 {
		lines = append(lines, m.styles.mutedText.Render("No liked songs yet"))
		lines = append(lines, "", m.styles.mutedText.Render("Press l on a playing track to like it"))
		return lines
	}

	label := fmt.Sprintf("%d songs", len(songs))
	if len(songs) == 1 {
		label = "1 song"
	}
	lines = append(lines, m.styles.mutedText.Render(label), "")

	items := make([]string, len(songs))
	for i, t := range songs {
		items[i] = fmt.Sprintf("%d. %s", i+1, trackLabel(t))
	}
	visible := height - listTop
	m.likedScroll = adjustScroll(int(m.likedCursor), len(items), visible, m.likedScroll)
	lines = append(lines, renderList(m.styles, items, int(m.likedCursor), m.likedScroll, width, visible)...)
	return lines
}

func (m *Model) renderSettings(width, height int) []string {
	lines := make([]string, 0, height)
	lines = append(lines, m.styles.title.Render("Theme"), "")

	items := make([]string, len(themeNames))
	for i, name := range themeNames {
		mark := " "
		if name == m.theme {
			mark = "✓"
		}
		items[i] = mark + " " + name
	}
	lines = append(lines, renderList(m.styles, items, int(m.settingsCursor), 0, width, height-listTop)...)

	lines = append(lines, "")
	switch {
	case m.notice != "":
		lines = append(lines, m.styles.noticeText.Render(truncate(m.notice, width)))
	case m.session != nil:
		lines = append(lines, m.styles.mutedText.Render(truncate("Signed in as "+m.session.User.Email, width)))
	default:
		lines = append(lines, m.styles.mutedText.Render("Not signed in"))
	}
	return lines
}

func (m *Model) renderAuthModal(width int) []string {
	title := "Sign In"
	hint := "No account? ctrl+t to sign up"
	if m.auth.mode == authSignUp {
		title = "Sign Up"
		hint = "Have an account? ctrl+t to sign in"
	}

	var body []string
	body = append(body, m.styles.title.Render(title), "")
	body = append(body, m.auth.email.View())
	body = append(body, m.auth.password.View())
	body = append(body, "")
	switch {
	case m.auth.submitting:
		body = append(body, m.styles.mutedText.Render("Please wait..."))
	case m.auth.errText != "":
		body = append(body, m.styles.errorText.Render(truncate(m.auth.errText, width-8)))
	case m.auth.notice != "":
		body = append(body, m.styles.noticeText.Render(truncate(m.auth.notice, width-8)))
	default:
		body = append(body, m.styles.mutedText.Render(hint))
	}
	body = append(body, m.styles.mutedText.Render("tab field • enter submit • esc close"))

	box := m.styles.modalBox.Render(strings.Join(body, "\n"))
	return strings.Split(box, "\n")
}

func (m *Model) renderSignOutConfirm() []string {
	body := []string{
		m.styles.title.Render("Sign out?"),
		"",
		m.styles.normalItem.Render("Liked songs stay on this device."),
		"",
		m.styles.mutedText.Render("y sign out • n cancel"),
	}
	box := m.styles.modalBox.Render(strings.Join(body, "\n"))
	return strings.Split(box, "\n")
}

// contentLines renders the active view (or the open modal) into the
// content leaf's lines.
func (m *Model) contentLines(width, height int) []string {
	if m.auth.open {
		return m.renderAuthModal(width)
	}
	if m.confirmSignOut {
		return m.renderSignOutConfirm()
	}

	switch m.nav.Current() {
	case core.ViewMenu:
		return m.renderMenu(width, height)
	case core.ViewNowPlaying:
		return m.renderNowPlaying(width, height)
	case core.ViewSearch:
		return m.renderSearch(width, height)
	case core.ViewSettings:
		return m.renderSettings(width, height)
	case core.ViewLikedSongs:
		return m.renderLiked(width, height)
	}
	return nil
}

func (m *Model) helpText() string {
	if m.auth.open || m.confirmSignOut {
		return ""
	}
	switch m.nav.Current() {
	case core.ViewMenu:
		return "↑↓ move • enter select • space play/pause • q quit"
	case core.ViewNowPlaying:
		return "space play/pause • l like • hold ◀◀/▶▶ to seek • esc back"
	case core.ViewSearch:
		return "type to search • ↑↓ move • enter play • esc back"
	case core.ViewSettings:
		return "↑↓ move • enter apply • esc back"
	case core.ViewLikedSongs:
		return "↑↓ move • enter play • l unlike • esc back"
	}
	return ""
}

// Control buttons along the bottom row.

type ctlButton int

const (
	ctlNone ctlButton = iota
	ctlMenu
	ctlPrev
	ctlPlay
	ctlNext
	ctlSelect
)

type ctlSeg struct {
	btn    ctlButton
	label  string
	x0, x1 int // [x0, x1) in screen columns
}

const ctlGap = 2

// controlSegments lays out the wheel buttons centered in the given width
// and returns their clickable column ranges.
func controlSegments(playing bool, width int) []ctlSeg {
	play := "[ PLAY ]"
	if playing {
		play = "[PAUSE ]"
	}
	segs := []ctlSeg{
		{btn: ctlMenu, label: "[MENU]"},
		{btn: ctlPrev, label: "[◀◀]"},
		{btn: ctlPlay, label: play},
		{btn: ctlNext, label: "[▶▶]"},
		{btn: ctlSelect, label: "[ OK ]"},
	}

	total := 0
	for i := range segs {
		total += runewidth.StringWidth(segs[i].label)
	}
	total += ctlGap * (len(segs) - 1)

	x := (width - total) / 2
	if x < 0 {
		x = 0
	}
	for i := range segs {
		segs[i].x0 = x
		x += runewidth.StringWidth(segs[i].label)
		segs[i].x1 = x
		x += ctlGap
	}
	return segs
}

func renderControls(st styleSet, segs []ctlSeg) string {
	var b strings.Builder
	x := 0
	for _, s := range segs {
		if s.x0 > x {
			b.WriteString(strings.Repeat(" ", s.x0-x))
		}
		b.WriteString(st.frame.Render(s.label))
		x = s.x1
	}
	return b.String()
}

func buttonAt(segs []ctlSeg, x int) ctlButton {
	for _, s := range segs {
		if x >= s.x0 && x < s.x1 {
			return s.btn
		}
	}
	return ctlNone
}
