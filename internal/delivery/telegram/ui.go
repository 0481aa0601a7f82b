package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
	"github.com/aliskhannn/career-compass-bot/internal/quiz"
)

const buttonsPerRow = 3

// chunk splits buttons into rows of n.
func chunk(buttons []tgbotapi.InlineKeyboardButton, n int) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for len(buttons) > n {
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}
	if len(buttons) > 0 {
		rows = append(rows, buttons)
	}
	return rows
}

// checked marks the active choice of a filter row.
func checked(label string, active bool) string {
	if active {
		return "✓ " + label
	}
	return label
}

// option is a filter choice: the value sent in callback data and its label.
type option struct {
	Value string
	Label string
}

// buildCareersKeyboard builds the careers list keyboard: categories, sort, details and pagination.
func buildCareersKeyboard(
	careers []entities.Career,
	p careersPage,
	pages int,
	categories []entities.CareerCategory,
) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	categoryButtons := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(
			checked("Tất cả", p.Category == catalog.All),
			buildCareersCallback(careersPage{Category: catalog.All, Sort: p.Sort}),
		),
	}
	for _, c := range categories {
		categoryButtons = append(categoryButtons, tgbotapi.NewInlineKeyboardButtonData(
			checked(c.Name, p.Category == c.ID),
			buildCareersCallback(careersPage{Category: c.ID, Sort: p.Sort}),
		))
	}
	rows = append(rows, chunk(categoryButtons, buttonsPerRow)...)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(
			checked("🔤 Theo tên", p.Sort != catalog.SortNumericDesc),
			buildCareersCallback(careersPage{Category: p.Category, Sort: catalog.SortName}),
		),
		tgbotapi.NewInlineKeyboardButtonData(
			checked("💰 Lương cao", p.Sort == catalog.SortNumericDesc),
			buildCareersCallback(careersPage{Category: p.Category, Sort: catalog.SortNumericDesc}),
		),
	))

	from, to, page, _ := paginate(len(careers), p.Page, careersPerPage)
	for _, c := range careers[from:to] {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ "+c.Title, buildCareerCallback(c.ID)),
		))
	}

	if pages > 1 {
		var nav []tgbotapi.InlineKeyboardButton
		if page > 0 {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Trước",
				buildCareersCallback(careersPage{Page: page - 1, Category: p.Category, Sort: p.Sort})))
		}
		if page < pages-1 {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Sau ▶️",
				buildCareersCallback(careersPage{Page: page + 1, Category: p.Category, Sort: p.Sort})))
		}
		rows = append(rows, nav)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildCareerKeyboard builds the keyboard under career details.
func buildCareerKeyboard(c entities.Career) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("☆ Lưu / bỏ lưu", buildBookmarkCallback(entities.BookmarkCareer, c.ID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💼 Nghề cùng lĩnh vực",
				buildCareersCallback(careersPage{Category: c.Category, Sort: catalog.SortName})),
		),
	)
}

// buildMediaKeyboard builds category and audience filters for media.
func buildMediaKeyboard(categories []option, category, audience string) tgbotapi.InlineKeyboardMarkup {
	var categoryButtons []tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		categoryButtons = append(categoryButtons, tgbotapi.NewInlineKeyboardButtonData(
			checked(c.Label, c.Value == category),
			buildMediaCallback(c.Value, audience),
		))
	}

	audiences := []option{{Value: catalog.All, Label: "Mọi người"}}
	for _, t := range entities.UserTypes {
		audiences = append(audiences, option{Value: string(t), Label: t.Label()})
	}

	var audienceButtons []tgbotapi.InlineKeyboardButton
	for _, a := range audiences {
		audienceButtons = append(audienceButtons, tgbotapi.NewInlineKeyboardButtonData(
			checked(a.Label, a.Value == audience),
			buildMediaCallback(category, a.Value),
		))
	}

	rows := chunk(categoryButtons, buttonsPerRow)
	rows = append(rows, chunk(audienceButtons, 2)...)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildStoriesKeyboard builds the field filter for stories.
func buildStoriesKeyboard(fields []option, field string) tgbotapi.InlineKeyboardMarkup {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, f := range fields {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			checked(f.Label, f.Value == field),
			buildStoriesCallback(f.Value),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(chunk(buttons, buttonsPerRow)...)
}

// buildResourcesKeyboard builds kind tabs and bookmark buttons for resources.
func buildResourcesKeyboard(resources []entities.Resource, kind string) tgbotapi.InlineKeyboardMarkup {
	var tabs []tgbotapi.InlineKeyboardButton
	for _, k := range entities.ResourceKinds {
		tabs = append(tabs, tgbotapi.NewInlineKeyboardButtonData(
			checked(resourceKindLabels[k], k == kind),
			buildResourcesCallback(k),
		))
	}

	rows := chunk(tabs, 2)
	for _, r := range resources {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("☆ "+r.Title, buildBookmarkCallback(entities.BookmarkResource, r.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildAdmissionsKeyboard builds the admissions section tabs.
func buildAdmissionsKeyboard(section string) tgbotapi.InlineKeyboardMarkup {
	sections := []option{
		{Value: admissionMajors, Label: "🎓 Ngành học"},
		{Value: admissionAbroad, Label: "✈️ Du học"},
		{Value: admissionInterview, Label: "💡 Phỏng vấn"},
		{Value: admissionCV, Label: "📝 CV"},
	}

	var buttons []tgbotapi.InlineKeyboardButton
	for _, s := range sections {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			checked(s.Label, s.Value == section),
			buildAdmissionCallback(s.Value),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(chunk(buttons, 2)...)
}

// buildInterestKeyboard builds the field of interest choice shown before the quiz.
func buildInterestKeyboard(interests []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, interest := range interests {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(interest, buildQuizInterestCallback(i)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizAnswerKeyboard builds keyboard for a quiz question.
func buildQuizAnswerKeyboard(q quiz.Question, selected int, hasBack bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, opt := range q.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(checked(opt, i == selected), buildQuizAnswerCallback(q.ID, i)),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if hasBack {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Quay lại", buildQuizBackCallback()))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("✖️ Hủy", buildQuizCancelCallback()))
	rows = append(rows, nav)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Làm lại", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💼 Khám phá nghề nghiệp",
				buildCareersCallback(careersPage{Category: catalog.All, Sort: catalog.SortName})),
		),
	)
}

// buildProfileKeyboard builds the user type choice.
func buildProfileKeyboard(current entities.UserType) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range entities.UserTypes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(checked(t.Label(), t == current), buildProfileCallback(string(t))),
		))
	}
	if current != entities.UserTypeNone {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Xóa hồ sơ", buildProfileCallback(profileClear)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

var feedbackCategoryLabels = map[string]string{
	entities.FeedbackGeneral: "💬 Góp ý chung",
	entities.FeedbackFeature: "✨ Đề xuất tính năng",
	entities.FeedbackBug:     "🐞 Báo lỗi",
	entities.FeedbackContent: "📄 Nội dung",
	entities.FeedbackUI:      "🎨 Giao diện",
}

// buildFeedbackCategoryKeyboard builds the feedback topic choice.
func buildFeedbackCategoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, c := range entities.FeedbackCategories {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(feedbackCategoryLabels[c], buildFeedbackCategoryCallback(c)))
	}

	rows := chunk(buttons, 2)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Hủy", buildFeedbackCancelCallback()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildFeedbackRatingKeyboard builds the 1..5 star rating choice. Zero skips rating.
func buildFeedbackRatingKeyboard() tgbotapi.InlineKeyboardMarkup {
	var stars []tgbotapi.InlineKeyboardButton
	for n := 1; n <= 5; n++ {
		stars = append(stars, tgbotapi.NewInlineKeyboardButtonData(renderRating(n), buildFeedbackRatingCallback(n)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		stars,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Bỏ qua", buildFeedbackRatingCallback(0)),
			tgbotapi.NewInlineKeyboardButtonData("✖️ Hủy", buildFeedbackCancelCallback()),
		),
	)
}
