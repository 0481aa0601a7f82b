package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/career-compass-bot/internal/catalog"
	"github.com/aliskhannn/career-compass-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionCareers   = "careers"
	actionCareer    = "career"
	actionBookmark  = "bm"
	actionMedia     = "media"
	actionStories   = "stories"
	actionResources = "res"
	actionAdmission = "adm"
	actionQuiz      = "quiz"
	actionProfile   = "profile"
	actionFeedback  = "fb"
)

// Quiz sub-actions.
const (
	quizStart    = "start"
	quizInterest = "int"
	quizAnswer   = "ans"
	quizBack     = "back"
	quizCancel   = "cancel"
)

// Admissions sections.
const (
	admissionMajors    = "majors"
	admissionAbroad    = "abroad"
	admissionInterview = "interview"
	admissionCV        = "cv"
)

// Feedback sub-actions.
const (
	feedbackCategory = "cat"
	feedbackRating   = "rate"
	feedbackCancel   = "cancel"
)

const profileClear = "clear"

// Sort keys travel in short form to keep callback data under 64 bytes.
const (
	sortParamName    = "n"
	sortParamNumeric = "s"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam returns the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// careersPage is the careers list state carried by callback data.
// The search text lives in the chat state.
type careersPage struct {
	Page     int
	Category string
	Sort     catalog.SortKey
}

func buildCareersCallback(p careersPage) string {
	category := p.Category
	if category == "" {
		category = catalog.All
	}
	sort := sortParamName
	if p.Sort == catalog.SortNumericDesc {
		sort = sortParamNumeric
	}

	return callbackData{
		Action: actionCareers,
		Params: []string{strconv.Itoa(p.Page), category, sort},
	}.encode()
}

// parseCareersCallback reads careers:<page>:<category>:<sort>.
func parseCareersCallback(cd callbackData) (careersPage, bool) {
	if cd.Action != actionCareers || len(cd.Params) != 3 {
		return careersPage{}, false
	}

	page, ok := cd.intParam(0)
	if !ok || page < 0 {
		return careersPage{}, false
	}

	category := cd.param(1)
	if category == "" {
		category = catalog.All
	}

	sort := catalog.SortName
	if cd.param(2) == sortParamNumeric {
		sort = catalog.SortNumericDesc
	}

	return careersPage{Page: page, Category: category, Sort: sort}, true
}

func buildCareerCallback(id int) string {
	return callbackData{Action: actionCareer, Params: []string{strconv.Itoa(id)}}.encode()
}

func buildBookmarkCallback(kind entities.BookmarkKind, id int) string {
	return callbackData{
		Action: actionBookmark,
		Params: []string{string(kind), strconv.Itoa(id)},
	}.encode()
}

func buildMediaCallback(category, audience string) string {
	return callbackData{Action: actionMedia, Params: []string{category, audience}}.encode()
}

func buildStoriesCallback(field string) string {
	return callbackData{Action: actionStories, Params: []string{field}}.encode()
}

func buildResourcesCallback(kind string) string {
	return callbackData{Action: actionResources, Params: []string{kind}}.encode()
}

func buildAdmissionCallback(section string) string {
	return callbackData{Action: actionAdmission, Params: []string{section}}.encode()
}

func buildQuizStartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizStart}}.encode()
}

// buildQuizInterestCallback refers to the interest by index; names may exceed the size limit.
func buildQuizInterestCallback(index int) string {
	return callbackData{Action: actionQuiz, Params: []string{quizInterest, strconv.Itoa(index)}}.encode()
}

func buildQuizAnswerCallback(questionID, option int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.Itoa(questionID), strconv.Itoa(option)},
	}.encode()
}

func buildQuizBackCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizBack}}.encode()
}

func buildQuizCancelCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizCancel}}.encode()
}

func buildProfileCallback(userType string) string {
	return callbackData{Action: actionProfile, Params: []string{userType}}.encode()
}

func buildFeedbackCategoryCallback(category string) string {
	return callbackData{Action: actionFeedback, Params: []string{feedbackCategory, category}}.encode()
}

func buildFeedbackRatingCallback(rating int) string {
	return callbackData{Action: actionFeedback, Params: []string{feedbackRating, strconv.Itoa(rating)}}.encode()
}

func buildFeedbackCancelCallback() string {
	return callbackData{Action: actionFeedback, Params: []string{feedbackCancel}}.encode()
}
