package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
	"github.com/aliskhannn/career-compass-bot/internal/service"
)

const careersPerPage = 5

// paginate returns the bounds of page and the total page count.
// A page past the end is clamped to the last page.
func paginate(total, page, perPage int) (from, to, current, pages int) {
	if total == 0 {
		return 0, 0, 0, 0
	}
	pages = (total + perPage - 1) / perPage
	current = min(max(page, 0), pages-1)
	from = current * perPage
	to = min(from+perPage, total)
	return from, to, current, pages
}

// renderWelcome builds the /start message for the user's profile.
func renderWelcome(u *entities.User) string {
	var sb strings.Builder

	sb.WriteString(bold(u.UserType.Greeting()))
	sb.WriteString("\n\n")
	if u.DisplayName != "" {
		sb.WriteString(md("Xin chào, " + u.DisplayName + "!"))
		sb.WriteString("\n\n")
	}
	sb.WriteString(md("Cổng Hướng nghiệp giúp bạn khám phá nghề nghiệp, hiểu bản thân qua bài trắc nghiệm tính cách và chuẩn bị cho con đường học tập."))
	sb.WriteString("\n\n")
	sb.WriteString(md("💼 /careers — ngân hàng nghề nghiệp"))
	sb.WriteString("\n")
	sb.WriteString(md("🧭 /quiz — trắc nghiệm tính cách"))
	sb.WriteString("\n")
	sb.WriteString(md("🎬 /media — video và podcast"))
	sb.WriteString("\n")
	sb.WriteString(md("🎓 /admissions — thông tin tuyển sinh"))
	sb.WriteString("\n\n")
	if u.UserType == entities.UserTypeNone {
		sb.WriteString(md("Gõ /profile để chọn đối tượng và nhận nội dung phù hợp."))
	} else {
		sb.WriteString(md("Đối tượng: " + u.UserType.Label() + ". Gõ /profile để thay đổi."))
	}

	return sb.String()
}

// renderCareersPage renders one page of careers and returns the clamped page and page count.
func renderCareersPage(careers []entities.Career, p careersPage, search string, categoryName string) (string, int, int) {
	var sb strings.Builder

	sb.WriteString(bold("💼 Ngân hàng nghề nghiệp"))
	sb.WriteString("\n")

	var filters []string
	if search != "" {
		filters = append(filters, "từ khóa “"+search+"”")
	}
	if categoryName != "" {
		filters = append(filters, "lĩnh vực "+categoryName)
	}
	if p.Sort == catalog.SortNumericDesc {
		filters = append(filters, "lương cao trước")
	}
	if len(filters) > 0 {
		sb.WriteString(italic("Lọc: " + strings.Join(filters, ", ")))
		sb.WriteString("\n")
	}
	sb.WriteString(md(fmt.Sprintf("Tìm thấy %d nghề nghiệp", len(careers))))
	sb.WriteString("\n\n")

	from, to, page, pages := paginate(len(careers), p.Page, careersPerPage)
	if pages == 0 {
		sb.WriteString(md(msgNoCareers))
		return sb.String(), 0, 0
	}

	for i, c := range careers[from:to] {
		sb.WriteString(bold(fmt.Sprintf("%d. %s", from+i+1, c.Title)))
		sb.WriteString("\n")
		sb.WriteString(md(c.Description))
		sb.WriteString("\n")
		sb.WriteString(md("💰 " + c.Salary))
		sb.WriteString("\n\n")
	}
	sb.WriteString(md(fmt.Sprintf("Trang %d/%d", page+1, pages)))

	return sb.String(), page, pages
}

// renderCareer renders career details.
func renderCareer(c entities.Career) string {
	var sb strings.Builder

	sb.WriteString(bold("💼 " + c.Title))
	sb.WriteString("\n\n")
	sb.WriteString(md(c.Description))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Kỹ năng cần thiết:"))
	sb.WriteString("\n")
	for _, s := range c.Skills {
		sb.WriteString(md("• " + s))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(bold("Học vấn:"))
	sb.WriteString(" ")
	sb.WriteString(md(c.Education))
	sb.WriteString("\n")
	sb.WriteString(bold("Mức lương:"))
	sb.WriteString(" ")
	sb.WriteString(md(c.Salary))

	return sb.String()
}

func mediaIcon(m entities.MediaItem) string {
	if m.Type == entities.MediaPodcast {
		return "🎧"
	}
	return "🎬"
}

// renderMedia renders the media list for the given filters. hint, when set,
// follows the filter line.
func renderMedia(items []entities.MediaItem, categoryName, audienceLabel, hint string) string {
	var sb strings.Builder

	sb.WriteString(bold("🎬 Video và podcast hướng nghiệp"))
	sb.WriteString("\n")
	sb.WriteString(italic(fmt.Sprintf("Lĩnh vực: %s · Đối tượng: %s", categoryName, audienceLabel)))
	sb.WriteString("\n")
	if hint != "" {
		sb.WriteString(md(hint))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(items) == 0 {
		sb.WriteString(md(msgNoItems))
		return sb.String()
	}

	for _, m := range items {
		sb.WriteString(mediaIcon(m))
		sb.WriteString(" ")
		sb.WriteString(link(m.Title, m.URL))
		sb.WriteString(md(" (" + m.Duration + ")"))
		sb.WriteString("\n")
		sb.WriteString(md(m.Description))
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderStories renders success stories.
func renderStories(stories []entities.Story, fieldName string) string {
	var sb strings.Builder

	sb.WriteString(bold("🌟 Câu chuyện thành công"))
	sb.WriteString("\n")
	sb.WriteString(italic("Lĩnh vực: " + fieldName))
	sb.WriteString("\n\n")

	if len(stories) == 0 {
		sb.WriteString(md(msgNoItems))
		return sb.String()
	}

	for _, s := range stories {
		sb.WriteString(bold(s.Name))
		sb.WriteString(md(" — " + s.Title))
		sb.WriteString("\n")
		sb.WriteString(md(s.Story))
		sb.WriteString("\n")
		sb.WriteString(md("🏆 " + s.Achievement))
		sb.WriteString("\n")
		sb.WriteString(md("🛤 " + s.Journey))
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

var resourceKindLabels = map[string]string{
	entities.ResourceArticle:   "📄 Bài viết",
	entities.ResourceEbook:     "📚 E-book",
	entities.ResourceChecklist: "✅ Checklist",
	entities.ResourceWebinar:   "🎥 Webinar",
}

// renderResources renders resources of one kind.
func renderResources(resources []entities.Resource, kind string) string {
	var sb strings.Builder

	sb.WriteString(bold("📚 Thư viện tài liệu"))
	sb.WriteString("\n")
	sb.WriteString(italic(resourceKindLabels[kind]))
	sb.WriteString("\n\n")

	if len(resources) == 0 {
		sb.WriteString(md(msgNoItems))
		return sb.String()
	}

	for _, r := range resources {
		sb.WriteString(link(r.Title, r.Link))
		if r.Extra != "" {
			sb.WriteString(md(" · " + r.Extra))
		}
		sb.WriteString("\n")
		sb.WriteString(md(r.Description))
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderMajors renders university majors.
func renderMajors(majors []entities.Major) string {
	var sb strings.Builder

	sb.WriteString(bold("🎓 Ngành học phổ biến"))
	sb.WriteString("\n\n")
	for _, m := range majors {
		sb.WriteString(bold(m.Name))
		sb.WriteString(md(" (" + m.Duration + ")"))
		sb.WriteString("\n")
		sb.WriteString(md(m.Description))
		sb.WriteString("\n")
		sb.WriteString(md("Khối thi: " + m.Requirements))
		sb.WriteString("\n")
		sb.WriteString(md("Nghề nghiệp: " + strings.Join(m.Careers, ", ")))
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderStudyAbroad renders study abroad programs.
func renderStudyAbroad(programs []entities.StudyAbroadProgram) string {
	var sb strings.Builder

	sb.WriteString(bold("✈️ Du học"))
	sb.WriteString("\n\n")
	for _, p := range programs {
		sb.WriteString(bold(p.Country))
		sb.WriteString("\n")
		sb.WriteString(md("Chương trình: " + strings.Join(p.Programs, ", ")))
		sb.WriteString("\n")
		sb.WriteString(md("Thời gian: " + p.Duration))
		sb.WriteString("\n")
		sb.WriteString(md("Chi phí: " + p.Cost))
		sb.WriteString("\n")
		sb.WriteString(md("Yêu cầu: " + p.Requirements))
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderTips renders tip sections of one kind.
func renderTips(sections []entities.TipSection, kind string) string {
	var sb strings.Builder

	title := "💡 Mẹo phỏng vấn"
	if kind == admissionCV {
		title = "📝 Mẹo viết CV"
	}
	sb.WriteString(bold(title))
	sb.WriteString("\n\n")

	for _, s := range sections {
		if s.Kind != kind {
			continue
		}
		sb.WriteString(bold(s.Title))
		sb.WriteString("\n")
		for _, tip := range s.Tips {
			sb.WriteString(md("• " + tip))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderQuizQuestion renders the current question with progress.
func renderQuizQuestion(q quiz.Question, index, total int, interest string) string {
	var sb strings.Builder

	sb.WriteString(italic(fmt.Sprintf("Câu %d/%d · %s", index+1, total, interest)))
	sb.WriteString("\n")
	sb.WriteString(md(progressBar(index, total, 10)))
	sb.WriteString("\n\n")
	sb.WriteString(bold(q.Prompt))

	return sb.String()
}

// progressBar renders done out of total as a fixed width bar.
func progressBar(done, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := min(done*width/total, width)
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}

// renderQuizResult renders the scored quiz with the outcome of the primary type.
func renderQuizResult(res *entities.QuizResult, outcomes func(quiz.Category) entities.PersonalityType) string {
	var sb strings.Builder

	primary := outcomes(res.Primary)

	sb.WriteString(bold("🎯 Kết quả trắc nghiệm"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Bạn thuộc nhóm: "))
	sb.WriteString(bold(primary.Label))
	sb.WriteString("\n")
	sb.WriteString(md(primary.Description))
	sb.WriteString("\n\n")

	sb.WriteString(bold("Điểm theo nhóm:"))
	sb.WriteString("\n")
	for _, c := range quiz.Categories {
		label := outcomes(c).Label
		if label == "" {
			label = string(c)
		}
		sb.WriteString(md(fmt.Sprintf("%s: %d", label, res.Counts[c])))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if res.Interest != "" {
		sb.WriteString(md("Lĩnh vực quan tâm: " + res.Interest))
		sb.WriteString("\n\n")
	}

	sb.WriteString(bold("Nghề nghiệp gợi ý:"))
	sb.WriteString("\n")
	for _, s := range primary.Suggestions {
		sb.WriteString(md("• " + s))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderBookmarks renders the user's saved items.
func renderBookmarks(list *service.BookmarkList) string {
	if list.Empty() {
		return md(msgNoBookmarks)
	}

	var sb strings.Builder
	sb.WriteString(bold("★ Mục đã lưu"))
	sb.WriteString("\n\n")

	if len(list.Careers) > 0 {
		sb.WriteString(bold("Nghề nghiệp"))
		sb.WriteString("\n")
		for _, c := range list.Careers {
			sb.WriteString(md("• " + c.Title + " — " + c.Salary))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(list.Resources) > 0 {
		sb.WriteString(bold("Tài liệu"))
		sb.WriteString("\n")
		for _, r := range list.Resources {
			sb.WriteString(md("• "))
			sb.WriteString(link(r.Title, r.Link))
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderFeedbackReceived confirms a stored feedback entry.
func renderFeedbackReceived(f *entities.Feedback) string {
	var sb strings.Builder

	sb.WriteString(bold("✅ Cảm ơn bạn đã gửi phản hồi!"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Mã phản hồi: "))
	sb.WriteString("`" + f.ID.String() + "`")
	if f.Rating > 0 {
		sb.WriteString("\n")
		sb.WriteString(md("Đánh giá: " + strings.Repeat("⭐", f.Rating)))
	}

	return sb.String()
}

// renderRating renders a star rating choice label.
func renderRating(n int) string {
	return strconv.Itoa(n) + "⭐"
}
