package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/jobscout/internal/service"
	"github.com/avolkov/jobscout/models"
)

type mainTab int

const (
	tabJobs mainTab = iota
	tabMatches
	tabProfile
)

var tabTitles = []string{"Jobs", "Matches", "Profile"}

// historyForm selects which add-entry form is open on the profile tab.
type historyForm int

const (
	historyFormNone historyForm = iota
	historyFormExperience
	historyFormEducation
)

// jobTypeCycle is the order the t hotkey walks through the job-type filter.
// The leading empty string means "any type".
var jobTypeCycle = []string{
	"",
	models.JobTypeFullTime,
	models.JobTypePartTime,
	models.JobTypeContract,
	models.JobTypeInternship,
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	tab mainTab

	jobs        []models.Job
	filtered    []models.Job
	filters     service.Filters
	filterInput textinput.Model
	filtering   bool
	idx         int
	loadingJobs bool
	detail      bool

	recs        []models.RecommendedJob
	recIdx      int
	recDetail   bool
	loadingRecs bool
	recsErr     string

	user           models.User
	loadingProfile bool
	editing        bool
	editInputs     []textinput.Model
	editFocus      int
	editSubmitting bool

	historyIdx    int
	history       historyForm
	historyInputs []textinput.Model
	historyFocus  int
	historySaving bool

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	filter := textinput.New()
	filter.Placeholder = "search term"
	filter.Width = 40

	m := mainLoopModel{
		ctx:         ctx,
		services:    services,
		filterInput: filter,
		loadingJobs: true,
	}
	if user, ok := services.Session.CurrentUser(); ok {
		m.user = user
	}
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadJobs()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobsLoadedMsg:
		m.loadingJobs = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.jobs = msg.jobs
		m.applyJobFilters()
		return m, nil
	case recsLoadedMsg:
		m.loadingRecs = false
		if msg.err != nil {
			// Recommendations degrade independently: the failure renders
			// inside the tab, the rest of the client keeps working.
			m.recsErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.recsErr = ""
		m.recs = msg.recs
		if m.recIdx >= len(m.recs) {
			m.recIdx = 0
		}
		return m, nil
	case profileLoadedMsg:
		m.loadingProfile = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.user = msg.user
		m.clampHistoryIdx()
		return m, nil
	case profileSavedMsg:
		m.editSubmitting = false
		m.historySaving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.editing = false
		m.history = historyFormNone
		m.status = "Profile saved"
		m.errMsg = ""
		if user, ok := m.services.Session.CurrentUser(); ok {
			m.user = user
		}
		m.clampHistoryIdx()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.filtering || m.editing || m.history != historyFormNone {
			return m.updateTextEntry(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.filtering {
		return m.updateFiltering(keyMsg)
	}
	if m.editing {
		return m.updateEditing(keyMsg)
	}
	if m.history != historyFormNone {
		return m.updateHistoryForm(keyMsg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "1", "2", "3":
		return m.switchTab(mainTab(keyMsg.String()[0] - '1'))
	case "left", "h":
		if m.tab > tabJobs {
			return m.switchTab(m.tab - 1)
		}
		return m, nil
	case "right":
		if m.tab < tabProfile {
			return m.switchTab(m.tab + 1)
		}
		return m, nil
	}

	switch m.tab {
	case tabJobs:
		return m.updateJobsTab(keyMsg)
	case tabMatches:
		return m.updateMatchesTab(keyMsg)
	case tabProfile:
		return m.updateProfileTab(keyMsg)
	}
	return m, nil
}

func (m mainLoopModel) switchTab(tab mainTab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.detail = false
	m.recDetail = false
	m.history = historyFormNone
	m.status = ""
	m.errMsg = ""

	switch tab {
	case tabMatches:
		if m.recs == nil && m.recsErr == "" {
			m.loadingRecs = true
			return m, m.cmdLoadRecommendations()
		}
	case tabProfile:
		m.loadingProfile = true
		return m, m.cmdLoadProfile()
	}
	return m, nil
}

func (m mainLoopModel) updateJobsTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail {
		switch keyMsg.String() {
		case "esc":
			m.detail = false
		case "c":
			job, ok := m.currentJob()
			if !ok {
				return m, nil
			}
			text := fmt.Sprintf("%s at %s (%s)", job.Title, job.Company, job.Location)
			if err := clipboard.WriteAll(text); err != nil {
				m.errMsg = fmt.Sprintf("Copy failed: %v", err)
				return m, nil
			}
			m.status = "Copied to clipboard"
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.filtered)-1 {
			m.idx++
		}
	case "enter":
		if _, ok := m.currentJob(); !ok {
			m.status = "No jobs to show"
			return m, nil
		}
		m.detail = true
	case "/":
		m.filtering = true
		m.filterInput.SetValue(m.filters.SearchTerm)
		m.filterInput.Focus()
		return m, textinput.Blink
	case "r":
		m.filters.RemoteOnly = !m.filters.RemoteOnly
		m.applyJobFilters()
	case "t":
		m.filters.JobType = nextJobType(m.filters.JobType)
		m.applyJobFilters()
	case "esc":
		if !m.filters.IsZero() {
			m.filters = service.Filters{}
			m.filterInput.SetValue("")
			m.applyJobFilters()
		}
	case "f5", "s":
		if m.loadingJobs {
			return m, nil
		}
		m.loadingJobs = true
		m.status = ""
		return m, m.cmdLoadJobs()
	}

	return m, nil
}

func (m mainLoopModel) updateFiltering(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		m.filters.SearchTerm = strings.TrimSpace(m.filterInput.Value())
		m.applyJobFilters()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateMatchesTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.recDetail {
		if keyMsg.String() == "esc" {
			m.recDetail = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.recIdx > 0 {
			m.recIdx--
		}
	case "down", "j":
		if m.recIdx < len(m.recs)-1 {
			m.recIdx++
		}
	case "enter":
		if len(m.recs) == 0 {
			return m, nil
		}
		m.recDetail = true
	case "f5", "s":
		if m.loadingRecs {
			return m, nil
		}
		m.loadingRecs = true
		m.recsErr = ""
		return m, m.cmdLoadRecommendations()
	}

	return m, nil
}

func (m mainLoopModel) updateProfileTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "e":
		m.startProfileEdit()
		return m, textinput.Blink
	case "a":
		m.startHistoryForm(historyFormExperience)
		return m, textinput.Blink
	case "A":
		m.startHistoryForm(historyFormEducation)
		return m, textinput.Blink
	case "up", "k":
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case "down", "j":
		if m.historyIdx < m.historyEntryCount()-1 {
			m.historyIdx++
		}
	case "d":
		if m.historySaving {
			return m, nil
		}
		update := service.RemoveHistoryEntry(m.user, m.historyIdx)
		if update.IsZero() {
			m.status = "No entry selected"
			return m, nil
		}
		m.historySaving = true
		m.status = ""
		return m, m.cmdSaveProfile(update)
	case "f5", "s":
		if m.loadingProfile {
			return m, nil
		}
		m.loadingProfile = true
		return m, m.cmdLoadProfile()
	}
	return m, nil
}

// startHistoryForm opens the add-entry form for the given kind. Experience
// asks for company/role/duration, education for school/degree/year.
func (m *mainLoopModel) startHistoryForm(kind historyForm) {
	placeholders := []string{"company", "role", "duration (e.g. 2 years)"}
	if kind == historyFormEducation {
		placeholders = []string{"school", "degree", "year"}
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholder
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	m.history = kind
	m.historyInputs = inputs
	m.historyFocus = 0
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateHistoryForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.history = historyFormNone
		m.historySaving = false
		m.errMsg = ""
		return m, nil
	case "tab":
		m.historyInputs[m.historyFocus].Blur()
		m.historyFocus = (m.historyFocus + 1) % len(m.historyInputs)
		m.historyInputs[m.historyFocus].Focus()
		return m, nil
	case "shift+tab":
		m.historyInputs[m.historyFocus].Blur()
		m.historyFocus = (m.historyFocus - 1 + len(m.historyInputs)) % len(m.historyInputs)
		m.historyInputs[m.historyFocus].Focus()
		return m, nil
	case "enter":
		if m.historySaving {
			return m, nil
		}
		update, err := m.buildHistoryUpdate()
		if err != "" {
			m.errMsg = err
			return m, nil
		}
		m.historySaving = true
		m.errMsg = ""
		return m, m.cmdSaveProfile(update)
	}

	var cmd tea.Cmd
	m.historyInputs[m.historyFocus], cmd = m.historyInputs[m.historyFocus].Update(keyMsg)
	return m, cmd
}

// buildHistoryUpdate validates the open form and turns it into a partial
// profile update. The second return value is a user-facing validation
// message, empty when the update is good to send.
func (m mainLoopModel) buildHistoryUpdate() (models.UserUpdate, string) {
	first := strings.TrimSpace(m.historyInputs[0].Value())
	second := strings.TrimSpace(m.historyInputs[1].Value())
	third := strings.TrimSpace(m.historyInputs[2].Value())

	if m.history == historyFormEducation {
		if first == "" || second == "" {
			return models.UserUpdate{}, "School and degree are required"
		}
		year, err := strconv.Atoi(third)
		if err != nil || year < 0 {
			return models.UserUpdate{}, "Year must be a number"
		}
		return service.AppendEducation(m.user, models.Education{
			School: first,
			Degree: second,
			Year:   year,
		}), ""
	}

	if first == "" || second == "" {
		return models.UserUpdate{}, "Company and role are required"
	}
	return service.AppendExperience(m.user, models.Experience{
		Company:  first,
		Role:     second,
		Duration: third,
	}), ""
}

func (m mainLoopModel) historyEntryCount() int {
	return len(m.user.Experience) + len(m.user.Education)
}

func (m *mainLoopModel) clampHistoryIdx() {
	if m.historyIdx >= m.historyEntryCount() {
		m.historyIdx = m.historyEntryCount() - 1
	}
	if m.historyIdx < 0 {
		m.historyIdx = 0
	}
}

func (m mainLoopModel) updateEditing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.editing = false
		m.editSubmitting = false
		m.errMsg = ""
		return m, nil
	case "tab":
		m.editInputs[m.editFocus].Blur()
		m.editFocus = (m.editFocus + 1) % len(m.editInputs)
		m.editInputs[m.editFocus].Focus()
		return m, nil
	case "shift+tab":
		m.editInputs[m.editFocus].Blur()
		m.editFocus = (m.editFocus - 1 + len(m.editInputs)) % len(m.editInputs)
		m.editInputs[m.editFocus].Focus()
		return m, nil
	case "enter":
		if m.editSubmitting {
			return m, nil
		}
		update := m.buildProfileUpdate()
		if update.IsZero() {
			m.editing = false
			m.status = "Nothing changed"
			return m, nil
		}
		m.editSubmitting = true
		return m, m.cmdSaveProfile(update)
	}

	var cmd tea.Cmd
	m.editInputs[m.editFocus], cmd = m.editInputs[m.editFocus].Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateTextEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.filtering {
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
	if m.history != historyFormNone {
		m.historyInputs[m.historyFocus], cmd = m.historyInputs[m.historyFocus].Update(msg)
		return m, cmd
	}
	m.editInputs[m.editFocus], cmd = m.editInputs[m.editFocus].Update(msg)
	return m, cmd
}

// startProfileEdit seeds the edit form from the current profile. Field order:
// full name, skills (comma-separated), minimum salary, remote preference.
func (m *mainLoopModel) startProfileEdit() {
	fullName := textinput.New()
	fullName.Placeholder = "full name"
	fullName.Width = 40
	fullName.SetValue(m.user.FullName)
	fullName.Focus()

	skills := textinput.New()
	skills.Placeholder = "skills, comma-separated"
	skills.Width = 40
	skills.SetValue(strings.Join(m.user.Skills, ", "))

	minSalary := textinput.New()
	minSalary.Placeholder = "minimum salary"
	minSalary.Width = 40
	if m.user.MinSalary() > 0 {
		minSalary.SetValue(strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", m.user.MinSalary()), "0"), "."))
	}

	remote := textinput.New()
	remote.Placeholder = "remote preferred? (y/n)"
	remote.Width = 40
	if m.user.RemotePreferred() {
		remote.SetValue("y")
	} else {
		remote.SetValue("n")
	}

	m.editInputs = []textinput.Model{fullName, skills, minSalary, remote}
	m.editFocus = 0
	m.editing = true
	m.status = ""
	m.errMsg = ""
}

// buildProfileUpdate diffs the edit form against the loaded profile and
// returns an update carrying only the fields that changed.
func (m mainLoopModel) buildProfileUpdate() models.UserUpdate {
	var update models.UserUpdate

	fullName := strings.TrimSpace(m.editInputs[0].Value())
	if fullName != m.user.FullName {
		update.FullName = &fullName
	}

	skills := service.NormalizeSkills(m.editInputs[1].Value())
	if !equalStrings(skills, m.user.Skills) {
		update.Skills = &skills
	}

	prefs := map[string]any{}
	minSalary := service.ParseMinSalary(m.editInputs[2].Value())
	if minSalary != m.user.MinSalary() {
		prefs[models.PrefMinSalary] = minSalary
	}
	remote := strings.HasPrefix(strings.ToLower(strings.TrimSpace(m.editInputs[3].Value())), "y")
	if remote != m.user.RemotePreferred() {
		prefs[models.PrefRemote] = remote
	}
	if len(prefs) > 0 {
		// Preferences merge server side, so unchanged keys stay out of the
		// payload entirely.
		update.Preferences = prefs
	}

	return update
}

func (m *mainLoopModel) applyJobFilters() {
	m.filtered = service.ApplyFilters(m.jobs, m.filters)
	if m.idx >= len(m.filtered) {
		m.idx = len(m.filtered) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) currentJob() (models.Job, bool) {
	if m.idx < 0 || m.idx >= len(m.filtered) {
		return models.Job{}, false
	}
	return m.filtered[m.idx], true
}

func nextJobType(current string) string {
	for i, jt := range jobTypeCycle {
		if jt == current {
			return jobTypeCycle[(i+1)%len(jobTypeCycle)]
		}
	}
	return ""
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m mainLoopModel) cmdLoadJobs() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		jobs, err := catalog.List(ctx)
		return jobsLoadedMsg{jobs: jobs, err: err}
	}
}

func (m mainLoopModel) cmdLoadRecommendations() tea.Cmd {
	ctx := m.ctx
	recommendations := m.services.Recommendations

	return func() tea.Msg {
		recs, err := recommendations.Fetch(ctx)
		return recsLoadedMsg{recs: recs, err: err}
	}
}

func (m mainLoopModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	profile := m.services.Profile

	return func() tea.Msg {
		user, err := profile.FetchCurrent(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdSaveProfile(update models.UserUpdate) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session

	return func() tea.Msg {
		return profileSavedMsg{err: session.UpdateProfile(ctx, update)}
	}
}
