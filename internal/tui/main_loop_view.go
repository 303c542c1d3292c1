package tui

import (
	"fmt"
	"strings"

	"github.com/avolkov/jobscout/models"
)

func (m mainLoopModel) View() string {
	var body, hotkeys string

	switch m.tab {
	case tabJobs:
		if m.detail {
			body = m.viewJobDetail()
			hotkeys = "esc: back │ c: copy"
		} else {
			body = m.viewJobList()
			hotkeys = "enter: open │ /: search │ r: remote │ t: type │ s: reload │ ←/→: tabs │ l: logout"
		}
	case tabMatches:
		if m.recDetail {
			body = m.viewMatchDetail()
			hotkeys = "esc: back"
		} else {
			body = m.viewMatchList()
			hotkeys = "enter: open │ s: reload │ ←/→: tabs │ l: logout"
		}
	case tabProfile:
		switch {
		case m.editing:
			body = m.viewProfileEdit()
			hotkeys = "esc: cancel │ tab: next field │ enter: save"
		case m.history != historyFormNone:
			body = m.viewHistoryForm()
			hotkeys = "esc: cancel │ tab: next field │ enter: save"
		default:
			body = m.viewProfile()
			hotkeys = "e: edit │ a: add exp │ A: add edu │ d: remove entry │ s: reload │ ←/→: tabs │ l: logout"
		}
	}

	var b strings.Builder
	b.WriteString(m.viewTabBar())
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(body)

	return renderPage("JOBSCOUT", strings.TrimRight(b.String(), "\n"), hotkeys)
}

func (m mainLoopModel) viewTabBar() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if mainTab(i) == m.tab {
			parts[i] = activeTab.Render(label)
		} else {
			parts[i] = inactiveTab.Render(label)
		}
	}
	return strings.Join(parts, "  │  ")
}

func (m mainLoopModel) viewJobList() string {
	if m.loadingJobs {
		return "Loading jobs..."
	}

	var b strings.Builder

	if m.filtering {
		b.WriteString("Search: [")
		b.WriteString(m.filterInput.View())
		b.WriteString("]\n\n")
	} else if !m.filters.IsZero() {
		b.WriteString("Filters: ")
		b.WriteString(m.viewActiveFilters())
		b.WriteString("   (esc clears)\n\n")
	}

	if len(m.filtered) == 0 {
		if len(m.jobs) == 0 {
			b.WriteString("The catalog is empty.")
		} else {
			b.WriteString("No jobs match the current filters.")
		}
		return b.String()
	}

	for i, job := range m.filtered {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		remote := ""
		if job.IsRemote {
			remote = " [remote]"
		}
		line := fmt.Sprintf("%s %s — %s (%s)%s", cursor, job.Title, job.Company, job.Location, remote)
		b.WriteString(fitText(line, 78))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\n%d of %d jobs", len(m.filtered), len(m.jobs)))

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewActiveFilters() string {
	var parts []string
	if m.filters.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("%q", m.filters.SearchTerm))
	}
	if m.filters.RemoteOnly {
		parts = append(parts, "remote only")
	}
	if m.filters.JobType != "" {
		parts = append(parts, "type="+m.filters.JobType)
	}
	return strings.Join(parts, ", ")
}

func (m mainLoopModel) viewJobDetail() string {
	job, ok := m.currentJob()
	if !ok {
		return "No job selected."
	}
	return renderJob(job)
}

func renderJob(job models.Job) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(job.Title))
	b.WriteString("\n\n")
	b.WriteString("Company:   " + valueOrDash(job.Company) + "\n")
	b.WriteString("Location:  " + valueOrDash(job.Location) + "\n")
	b.WriteString("Type:      " + valueOrDash(job.JobType) + "\n")
	b.WriteString("Remote:    " + yesNo(job.IsRemote) + "\n")
	b.WriteString("Salary:    " + valueOrDash(job.SalaryRange) + "\n")
	if !job.PostedDate.IsZero() {
		b.WriteString("Posted:    " + job.PostedDate.Format("2006-01-02") + "\n")
	}
	if len(job.Requirements) > 0 {
		b.WriteString("\nRequirements:\n")
		for _, req := range job.Requirements {
			b.WriteString("  - " + req + "\n")
		}
	}
	if strings.TrimSpace(job.Description) != "" {
		b.WriteString("\n")
		b.WriteString(job.Description)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewMatchList() string {
	if m.loadingRecs {
		return "Scoring jobs against your profile..."
	}
	if m.recsErr != "" {
		return errorStyle.Render("Recommendations unavailable: "+m.recsErr) + "\n\n" +
			helpStyle.Render("press s to retry")
	}
	if len(m.recs) == 0 {
		return "No recommendations yet. Fill in your profile skills and try again."
	}

	var b strings.Builder
	for i, rec := range m.recs {
		cursor := " "
		if i == m.recIdx {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %3d%%  %s — %s", cursor, rec.MatchPercent, rec.Job.Title, rec.Job.Company)
		b.WriteString(fitText(line, 78))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewMatchDetail() string {
	if m.recIdx < 0 || m.recIdx >= len(m.recs) {
		return "No recommendation selected."
	}
	rec := m.recs[m.recIdx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Match: %d%%\n", rec.MatchPercent))
	if len(rec.MatchReasons) > 0 {
		b.WriteString("Why:\n")
		for _, reason := range rec.MatchReasons {
			b.WriteString("  - " + reason + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(renderJob(rec.Job))
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewProfile() string {
	if m.loadingProfile {
		return "Loading profile..."
	}

	var b strings.Builder
	b.WriteString("Username:   " + valueOrDash(m.user.Username) + "\n")
	b.WriteString("Email:      " + valueOrDash(m.user.Email) + "\n")
	b.WriteString("Full name:  " + valueOrDash(m.user.FullName) + "\n")
	b.WriteString("Skills:     " + valueOrDash(strings.Join(m.user.Skills, ", ")) + "\n")

	minSalary := "-"
	if m.user.MinSalary() > 0 {
		minSalary = fmt.Sprintf("%.0f", m.user.MinSalary())
	}
	b.WriteString("Min salary: " + minSalary + "\n")
	b.WriteString("Remote:     " + yesNo(m.user.RemotePreferred()) + "\n")

	entry := 0
	if len(m.user.Experience) > 0 {
		b.WriteString("\nExperience:\n")
		for _, exp := range m.user.Experience {
			b.WriteString(fmt.Sprintf("  %s %s, %s (%s)\n", m.historyCursor(entry), exp.Role, exp.Company, exp.Duration))
			entry++
		}
	}
	if len(m.user.Education) > 0 {
		b.WriteString("\nEducation:\n")
		for _, edu := range m.user.Education {
			b.WriteString(fmt.Sprintf("  %s %s, %s (%d)\n", m.historyCursor(entry), edu.Degree, edu.School, edu.Year))
			entry++
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) historyCursor(entry int) string {
	if entry == m.historyIdx {
		return ">"
	}
	return "-"
}

func (m mainLoopModel) viewHistoryForm() string {
	labels := []string{"Company ", "Role    ", "Duration"}
	header := "ADD EXPERIENCE"
	if m.history == historyFormEducation {
		labels = []string{"School  ", "Degree  ", "Year    "}
		header = "ADD EDUCATION"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, input := range m.historyInputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.historySaving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewProfileEdit() string {
	labels := []string{"Full name ", "Skills    ", "Min salary", "Remote    "}

	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for i, input := range m.editInputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.editSubmitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
