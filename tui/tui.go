package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/treilik/bubbleboxer"

	"iretro/api"
	"iretro/cloud"
	"iretro/core"
	"iretro/liked"
	"iretro/lyrics"
	"iretro/player"
	"iretro/store"
)

// Leaf models for bubbleboxer. Each holds its allotted size plus the
// prepared content the root model pushes in via EditLeaf.

type statusModel struct {
	width, height int
	line          string
}

func (m statusModel) Init() tea.Cmd { return nil }
func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	return m, nil
}
func (m statusModel) View() string { return m.line }

type contentModel struct {
	width, height int
	lines         []string
}

func (m contentModel) Init() tea.Cmd { return nil }
func (m contentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	return m, nil
}
func (m contentModel) View() string { return fitLines(m.lines, m.height) }

type controlsModel struct {
	width int
	line  string
}

func (m controlsModel) Init() tea.Cmd { return nil }
func (m controlsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}
func (m controlsModel) View() string { return m.line }

type helpModel struct {
	width int
	text  string
}

func (m helpModel) Init() tea.Cmd { return nil }
func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}
func (m helpModel) View() string { return m.text }

// Messages.

type searchDebounceMsg struct{ token int }

type searchResultMsg struct {
	token  int
	tracks []core.Track
	err    error
}

type trackLoadedMsg struct {
	token int
	track core.Track
	data  []byte
}

type trackLoadErrMsg struct {
	token int
	err   error
}

type playbackEndedMsg struct{}

type progressTickMsg struct{}

type holdTickMsg struct {
	pressID int
	now     time.Time
}

type authResultMsg struct {
	session *cloud.Session
	pending bool // sign-up accepted, confirmation email on the way
	err     error
}

type sessionValidatedMsg struct {
	user *cloud.User
	err  error
}

type cloudLikedMsg struct {
	tracks []core.Track
	err    error
}

type signOutDoneMsg struct{ err error }

type lyricsMsg struct {
	token int
	text  string
}

// Config carries the wired services into the TUI.
type Config struct {
	API     *api.Client
	Lyrics  *lyrics.Client
	Cloud   cloud.Service
	Store   *store.Store
	Liked   *liked.Manager
	Engine  *player.Engine
	Theme   string
	Session *cloud.Session // saved session, validated at startup
}

// Model is the root bubbletea model: navigation, the playback queue, and
// all per-view state; leaves only display what it prepares.
type Model struct {
	boxer         bubbleboxer.Boxer
	width, height int

	api    *api.Client
	lyrics *lyrics.Client
	cloud  cloud.Service
	store  *store.Store
	liked  *liked.Manager
	engine *player.Engine

	theme  string
	styles styleSet

	nav   *core.NavStack
	queue *core.Queue

	menuCursor     core.Cursor
	searchCursor   core.Cursor
	likedCursor    core.Cursor
	settingsCursor core.Cursor
	searchScroll   int
	likedScroll    int

	search      searchSession
	searchInput textinput.Model

	auth           authModal
	confirmSignOut bool
	session        *cloud.Session
	sessions       *cloud.SessionRef
	notice         string

	hold        holdSeek
	pendingLoad tea.Cmd
	loadToken   int
	loading     bool
	loadErr     string
	lyricsText  string
	ticking     bool
}

// NewModel builds the layout tree and seeds the root state.
func NewModel(cfg Config, sessions *cloud.SessionRef) Model {
	boxer := bubbleboxer.Boxer{
		ModelMap: make(map[string]tea.Model),
	}

	statusLeaf, _ := boxer.CreateLeaf("status", statusModel{width: 80, height: 1})
	contentLeaf, _ := boxer.CreateLeaf("content", contentModel{width: 80, height: 21})
	controlsLeaf, _ := boxer.CreateLeaf("controls", controlsModel{width: 80})
	helpLeaf, _ := boxer.CreateLeaf("help", helpModel{width: 80})

	boxer.LayoutTree = bubbleboxer.Node{
		Children:        []bubbleboxer.Node{statusLeaf, contentLeaf, controlsLeaf, helpLeaf},
		VerticalStacked: true,
		SizeFunc: func(node bubbleboxer.Node, height int) []int {
			content := height - 3
			if content < 3 {
				content = 3
			}
			return []int{1, content, 1, 1}
		},
	}

	input := textinput.New()
	input.Placeholder = "Search songs..."
	input.CharLimit = 156
	input.Width = 40

	theme := cfg.Theme
	if !store.ValidTheme(theme) {
		theme = store.DefaultTheme
	}

	lyricsClient := cfg.Lyrics
	if lyricsClient == nil {
		lyricsClient = lyrics.NewClient(nil, "")
	}

	m := Model{
		boxer:       boxer,
		width:       80,
		height:      24,
		api:         cfg.API,
		lyrics:      lyricsClient,
		cloud:       cfg.Cloud,
		store:       cfg.Store,
		liked:       cfg.Liked,
		engine:      cfg.Engine,
		theme:       theme,
		styles:      newStyleSet(theme),
		nav:         core.NewNavStack(),
		queue:       core.NewQueue(),
		search:      newSearchSession(),
		searchInput: input,
		auth:        newAuthModal(),
		sessions:    sessions,
	}
	// A saved session is only usable when the service is reachable at
	// all; otherwise run local-only and leave the stored copy alone.
	if cfg.Cloud.Configured() {
		m.setSession(cfg.Session)
	}
	return m
}

func (m *Model) setSession(s *cloud.Session) {
	m.session = s
	if m.sessions != nil {
		m.sessions.Set(s)
	}
}

func (m *Model) persistPrefs(mut func(*store.Prefs)) {
	p := m.store.Load()
	mut(&p)
	if err := m.store.Save(p); err != nil {
		slog.Warn("saving preferences", "error", err)
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEnded(m.engine)}
	if m.session != nil {
		cmds = append(cmds, validateSession(m.cloud, m.session))
	}
	return tea.Batch(cmds...)
}

// Commands.

func waitForEnded(e *player.Engine) tea.Cmd {
	return func() tea.Msg {
		<-e.Ended()
		return playbackEndedMsg{}
	}
}

func validateSession(svc cloud.Service, s *cloud.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		user, err := svc.GetUser(ctx, s)
		return sessionValidatedMsg{user: user, err: err}
	}
}

func fetchCloudLiked(svc cloud.Service, s *cloud.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		tracks, err := svc.FetchLikedSongs(ctx, s)
		return cloudLikedMsg{tracks: tracks, err: err}
	}
}

func runSearch(client *api.Client, token int, query string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := client.Search(context.Background(), query)
		return searchResultMsg{token: token, tracks: tracks, err: err}
	}
}

func debounceAfter(token int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{token: token}
	})
}

func holdTickAfter(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return holdTickMsg{pressID: id, now: t}
	})
}

// fetchLyrics carries the load token so lyrics for a skipped-past track
// never land on the current one. A miss just leaves the view bare.
func fetchLyrics(c *lyrics.Client, token int, t core.Track) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		text, err := c.Get(ctx, t.Title, t.DisplayArtist())
		if err != nil {
			if !errors.Is(err, lyrics.ErrNotFound) {
				slog.Warn("fetching lyrics", "track", t.ID, "error", err)
			}
			return lyricsMsg{token: token}
		}
		return lyricsMsg{token: token, text: text}
	}
}

func progressTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

// loadTrack downloads the track's audio. Each load bumps the token so a
// slow download for a track the user already skipped past is discarded.
func (m *Model) loadTrack(t core.Track) tea.Cmd {
	m.loadToken++
	m.loading = true
	m.loadErr = ""
	m.lyricsText = ""
	token := m.loadToken
	client := m.api
	return func() tea.Msg {
		data, err := client.FetchAudio(context.Background(), t.ID)
		if err != nil {
			return trackLoadErrMsg{token: token, err: err}
		}
		return trackLoadedMsg{token: token, track: t, data: data}
	}
}

// commitQueue snapshots a list into the queue and starts the chosen track.
func (m *Model) commitQueue(list []core.Track, index int) tea.Cmd {
	t := m.queue.Commit(list, index)
	if t == nil {
		return nil
	}
	m.nav.Push(core.ViewNowPlaying)
	return m.loadTrack(*t)
}

func (m *Model) submitAuth() tea.Cmd {
	m.auth.submitting = true
	m.auth.errText = ""
	m.auth.notice = ""

	svc := m.cloud
	mode := m.auth.mode
	email := m.auth.email.Value()
	password := m.auth.password.Value()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if mode == authSignIn {
			s, err := svc.SignIn(ctx, email, password)
			return authResultMsg{session: s, err: err}
		}

		res, err := svc.SignUp(ctx, email, password)
		if err != nil {
			return authResultMsg{err: err}
		}
		if res.Session != nil {
			return authResultMsg{session: res.Session}
		}
		if res.User != nil {
			return authResultMsg{pending: true}
		}
		return authResultMsg{}
	}
}

func (m *Model) signOut() tea.Cmd {
	old := m.session
	m.setSession(nil)
	m.confirmSignOut = false
	m.persistPrefs(func(p *store.Prefs) { p.Session = nil })

	svc := m.cloud
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return signOutDoneMsg{err: svc.SignOut(ctx, old)}
	}
}

// Update.

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		updated, cmd := m.boxer.Update(msg)
		m.boxer = updated.(bubbleboxer.Boxer)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case searchDebounceMsg:
		if !m.search.DebounceCurrent(msg.token) {
			return m, nil
		}
		issue, token := m.search.Begin(m.searchInput.Value())
		m.searchCursor = 0
		m.searchScroll = 0
		if !issue {
			return m, nil
		}
		return m, runSearch(m.api, token, m.searchInput.Value())

	case searchResultMsg:
		if m.search.Resolve(msg.token, msg.tracks, msg.err) {
			m.searchCursor = m.searchCursor.ClampTo(len(m.search.results))
			m.searchScroll = 0
		}
		return m, nil

	case trackLoadedMsg:
		if msg.token != m.loadToken {
			return m, nil
		}
		m.loading = false
		if err := m.engine.Play(msg.track, msg.data); err != nil {
			m.loadErr = err.Error()
			slog.Error("starting playback", "track", msg.track.ID, "error", err)
			return m, nil
		}
		cmds := []tea.Cmd{fetchLyrics(m.lyrics, m.loadToken, msg.track)}
		if !m.ticking {
			m.ticking = true
			cmds = append(cmds, progressTick())
		}
		return m, tea.Batch(cmds...)

	case trackLoadErrMsg:
		if msg.token != m.loadToken {
			return m, nil
		}
		m.loading = false
		m.loadErr = msg.err.Error()
		slog.Error("loading track", "error", msg.err)
		return m, nil

	case playbackEndedMsg:
		cmds := []tea.Cmd{waitForEnded(m.engine)}
		if t := m.queue.Advance(); t != nil {
			cmds = append(cmds, m.loadTrack(*t))
		}
		return m, tea.Batch(cmds...)

	case progressTickMsg:
		if m.engine.Current() == nil {
			m.ticking = false
			return m, nil
		}
		return m, progressTick()

	case holdTickMsg:
		step, cont := m.hold.Tick(msg.pressID, msg.now)
		if step {
			if m.hold.dir == seekBack {
				m.engine.SeekBy(-seekStep)
			} else {
				m.engine.SeekBy(seekStep)
			}
		}
		if cont {
			return m, holdTickAfter(seekRepeat, msg.pressID)
		}
		return m, nil

	case authResultMsg:
		m.auth.submitting = false
		switch {
		case msg.err != nil:
			m.auth.errText = msg.err.Error()
		case msg.pending:
			m.auth.notice = msgCheckEmail
		case msg.session != nil:
			m.auth.Close()
			m.setSession(msg.session)
			m.persistPrefs(func(p *store.Prefs) { p.Session = msg.session })
			return m, fetchCloudLiked(m.cloud, msg.session)
		}
		return m, nil

	case sessionValidatedMsg:
		if msg.err != nil || msg.user == nil {
			slog.Info("saved session rejected", "error", msg.err)
			m.setSession(nil)
			m.persistPrefs(func(p *store.Prefs) { p.Session = nil })
			return m, nil
		}
		return m, fetchCloudLiked(m.cloud, m.session)

	case cloudLikedMsg:
		if msg.err != nil {
			slog.Warn("fetching cloud liked songs", "error", msg.err)
			return m, nil
		}
		m.liked.MergeCloud(msg.tracks)
		m.likedCursor = m.likedCursor.ClampTo(m.liked.Count())
		return m, nil

	case signOutDoneMsg:
		if msg.err != nil {
			slog.Warn("cloud sign out", "error", msg.err)
		}
		return m, nil

	case lyricsMsg:
		if msg.token == m.loadToken {
			m.lyricsText = msg.text
		}
		return m, nil
	}

	// Cursor blink and other component messages go to the focused input.
	if m.auth.open {
		return m, m.auth.UpdateInputs(msg)
	}
	if m.nav.Current() == core.ViewSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.engine.Stop()
		return m, tea.Quit
	}

	if m.confirmSignOut {
		switch key {
		case "y", "enter":
			return m, m.signOut()
		case "n", "esc":
			m.confirmSignOut = false
		}
		return m, nil
	}

	if m.auth.open {
		return m.handleAuthKey(msg)
	}

	if m.nav.Current() == core.ViewSearch {
		return m.handleSearchKey(msg)
	}

	switch key {
	case "q":
		m.engine.Stop()
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "enter":
		return m, m.commitSelection()

	case "esc", "backspace":
		m.popView()

	case " ":
		m.engine.TogglePause()

	case "l":
		m.toggleLike()

	case "left", "h":
		m.discretePrev()
		if cmd := m.pendingLoad; cmd != nil {
			m.pendingLoad = nil
			return m, cmd
		}

	case "right":
		if t := m.queue.Advance(); t != nil {
			return m, m.loadTrack(*t)
		}
	}

	return m, nil
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.auth.Close()
		return m, nil
	case "tab", "shift+tab", "down", "up":
		m.auth.NextField()
		return m, nil
	case "ctrl+t":
		m.auth.ToggleMode()
		return m, nil
	case "enter":
		if m.auth.field == fieldEmail {
			m.auth.NextField()
			return m, nil
		}
		if m.auth.CanSubmit() {
			return m, m.submitAuth()
		}
		return m, nil
	}
	return m, m.auth.UpdateInputs(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.popView()
		return m, nil
	case "up":
		m.searchCursor = m.searchCursor.Up()
		return m, nil
	case "down":
		m.searchCursor = m.searchCursor.Down(len(m.search.results))
		return m, nil
	case "enter":
		if len(m.search.results) > 0 {
			return m, m.commitQueue(m.search.results, int(m.searchCursor))
		}
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		token := m.search.Keystroke()
		return m, tea.Batch(cmd, debounceAfter(token))
	}
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	switch m.nav.Current() {
	case core.ViewMenu:
		if delta < 0 {
			m.menuCursor = m.menuCursor.Up()
		} else {
			m.menuCursor = m.menuCursor.Down(len(menuItems))
		}
	case core.ViewLikedSongs:
		if delta < 0 {
			m.likedCursor = m.likedCursor.Up()
		} else {
			m.likedCursor = m.likedCursor.Down(m.liked.Count())
		}
	case core.ViewSettings:
		if delta < 0 {
			m.settingsCursor = m.settingsCursor.Up()
		} else {
			m.settingsCursor = m.settingsCursor.Down(len(themeNames))
		}
	case core.ViewNowPlaying, core.ViewSearch:
	}
}

// commitSelection is the enter action for the active view.
func (m *Model) commitSelection() tea.Cmd {
	switch m.nav.Current() {
	case core.ViewMenu:
		return m.openMenuItem(int(m.menuCursor))

	case core.ViewLikedSongs:
		songs := m.liked.All()
		if len(songs) > 0 {
			return m.commitQueue(songs, int(m.likedCursor))
		}

	case core.ViewSettings:
		name := themeNames[int(m.settingsCursor)]
		m.theme = name
		m.styles = newStyleSet(name)
		m.persistPrefs(func(p *store.Prefs) { p.Theme = name })

	case core.ViewNowPlaying:
		m.engine.TogglePause()

	case core.ViewSearch:
		if len(m.search.results) > 0 {
			return m.commitQueue(m.search.results, int(m.searchCursor))
		}
	}
	return nil
}

func (m *Model) openMenuItem(item int) tea.Cmd {
	switch item {
	case menuNowPlaying:
		m.nav.Push(core.ViewNowPlaying)
	case menuSearch:
		m.nav.Push(core.ViewSearch)
		m.searchInput.Focus()
		return textinput.Blink
	case menuLiked:
		m.likedCursor = m.likedCursor.ClampTo(m.liked.Count())
		m.nav.Push(core.ViewLikedSongs)
	case menuSettings:
		m.notice = ""
		m.nav.Push(core.ViewSettings)
	case menuAccount:
		switch {
		case m.session != nil:
			m.confirmSignOut = true
		case !m.cloud.Configured():
			m.notice = "Cloud sync not configured. Liked songs stay on this device."
			m.nav.Push(core.ViewSettings)
		default:
			m.auth.Open(authSignIn)
			return textinput.Blink
		}
	}
	return nil
}

func (m *Model) popView() {
	if m.nav.Current() == core.ViewSearch {
		m.searchInput.Blur()
	}
	m.nav.Pop()
}

// toggleLike acts on the selected liked-list row when that view is open,
// otherwise on the playing track.
func (m *Model) toggleLike() {
	if m.nav.Current() == core.ViewLikedSongs {
		songs := m.liked.All()
		if i := int(m.likedCursor); i < len(songs) {
			m.liked.Toggle(songs[i])
			m.likedCursor = m.likedCursor.ClampTo(m.liked.Count())
		}
		return
	}
	if t := m.engine.Current(); t != nil {
		m.liked.Toggle(*t)
	}
}

// discretePrev restarts the track once it is past its first three seconds,
// and steps back through the queue before that. Any resulting load command
// is parked on pendingLoad for the caller to return.
func (m *Model) discretePrev() {
	if m.engine.Position() > 3*time.Second {
		m.engine.Restart()
		return
	}
	if t := m.queue.Retreat(); t != nil {
		m.pendingLoad = m.loadTrack(*t)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionRelease:
		if skip, dir := m.hold.Release(); skip {
			if dir == seekBack {
				m.discretePrev()
				if cmd := m.pendingLoad; cmd != nil {
					m.pendingLoad = nil
					return m, cmd
				}
			} else if t := m.queue.Advance(); t != nil {
				return m, m.loadTrack(*t)
			}
		}
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.auth.open || m.confirmSignOut {
			return m, nil
		}
		if msg.Y == m.height-2 {
			return m.pressControl(msg.X)
		}
		if msg.Y >= 1 && msg.Y <= m.height-3 {
			return m, m.clickContentRow(msg.Y - 1)
		}
	}
	return m, nil
}

func (m Model) pressControl(x int) (tea.Model, tea.Cmd) {
	segs := controlSegments(m.engine.Playing(), m.width)
	switch buttonAt(segs, x) {
	case ctlMenu:
		m.popView()
	case ctlPlay:
		m.engine.TogglePause()
	case ctlSelect:
		return m, m.commitSelection()
	case ctlPrev:
		id := m.hold.Press(seekBack, time.Now())
		return m, holdTickAfter(holdThreshold, id)
	case ctlNext:
		id := m.hold.Press(seekFwd, time.Now())
		return m, holdTickAfter(holdThreshold, id)
	}
	return m, nil
}

// clickContentRow selects the list row under the pointer; clicking the
// already-selected row commits it.
func (m *Model) clickContentRow(row int) tea.Cmd {
	index := row - listTop
	if index < 0 {
		return nil
	}

	switch m.nav.Current() {
	case core.ViewMenu:
		if index < len(menuItems) {
			if int(m.menuCursor) == index {
				return m.commitSelection()
			}
			m.menuCursor = core.Cursor(index)
		}
	case core.ViewSearch:
		index += m.searchScroll
		if index < len(m.search.results) {
			if int(m.searchCursor) == index {
				return m.commitSelection()
			}
			m.searchCursor = core.Cursor(index)
		}
	case core.ViewLikedSongs:
		index += m.likedScroll
		if index < m.liked.Count() {
			if int(m.likedCursor) == index {
				return m.commitSelection()
			}
			m.likedCursor = core.Cursor(index)
		}
	case core.ViewSettings:
		if index < len(themeNames) {
			if int(m.settingsCursor) == index {
				return m.commitSelection()
			}
			m.settingsCursor = core.Cursor(index)
		}
	case core.ViewNowPlaying:
	}
	return nil
}

// View.

func (m Model) View() string {
	temp := m
	temp.syncLeaves()
	return temp.boxer.View()
}

// syncLeaves pushes the rendered state of the active view into the leaves.
func (m *Model) syncLeaves() {
	contentHeight := m.height - 3
	if contentHeight < 3 {
		contentHeight = 3
	}

	title := m.nav.Current().Title()
	if m.engine.Playing() && m.nav.Current() != core.ViewNowPlaying {
		title += " ▶"
	}

	m.boxer.EditLeaf("status", func(model tea.Model) (tea.Model, error) {
		leaf := model.(statusModel)
		leaf.line = m.styles.statusBar.Width(m.width).Render(title)
		return leaf, nil
	})

	lines := m.contentLines(m.width, contentHeight)
	m.boxer.EditLeaf("content", func(model tea.Model) (tea.Model, error) {
		leaf := model.(contentModel)
		leaf.lines = lines
		return leaf, nil
	})

	m.boxer.EditLeaf("controls", func(model tea.Model) (tea.Model, error) {
		leaf := model.(controlsModel)
		leaf.line = renderControls(m.styles, controlSegments(m.engine.Playing(), m.width))
		return leaf, nil
	})

	m.boxer.EditLeaf("help", func(model tea.Model) (tea.Model, error) {
		leaf := model.(helpModel)
		leaf.text = m.styles.mutedText.Render(truncate(m.helpText(), m.width))
		return leaf, nil
	})
}

// Run starts the program in alt-screen mode with mouse reporting, which
// the wheel buttons and hold-to-seek need.
func Run(cfg Config, sessions *cloud.SessionRef) error {
	p := tea.NewProgram(NewModel(cfg, sessions), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
