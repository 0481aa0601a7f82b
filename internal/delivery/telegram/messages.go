// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Error messages.
const (
	msgInternalError    = "Đã xảy ra lỗi. Vui lòng thử lại sau."
	msgUnknownCommand   = "Lệnh không hợp lệ. Gõ /help để xem danh sách lệnh."
	msgItemNotFound     = "Không tìm thấy mục này."
	msgNoActiveQuiz     = "Bạn chưa bắt đầu bài trắc nghiệm. Gõ /quiz để bắt đầu."
	msgStaleQuestion    = "Câu hỏi này đã được trả lời. Hãy tiếp tục với câu hiện tại."
	msgNoResult         = "Bạn chưa hoàn thành bài trắc nghiệm nào. Gõ /quiz để bắt đầu."
	msgNoCareers        = "Không tìm thấy nghề nghiệp phù hợp. Thử từ khóa khác hoặc bỏ bộ lọc."
	msgNoItems          = "Chưa có nội dung cho bộ lọc này."
	msgNoBookmarks      = "Bạn chưa lưu mục nào. Nhấn ☆ Lưu ở nghề nghiệp hoặc tài liệu để lưu lại."
	msgFeedbackCanceled = "Đã hủy gửi phản hồi."
	msgFeedbackNoDraft  = "Phiên gửi phản hồi đã hết hạn. Gõ /feedback để bắt đầu lại."
)

// Prompts and confirmations.
const (
	msgProfilePrompt       = "Bạn là ai? Chọn để nhận nội dung phù hợp:"
	msgProfileCleared      = "Đã xóa hồ sơ. Nội dung sẽ hiển thị cho tất cả mọi người."
	msgQuizPickInterest    = "🧭 Trắc nghiệm tính cách nghề nghiệp\n\nTrước tiên, bạn quan tâm đến lĩnh vực nào?"
	msgQuizCanceled        = "Đã hủy bài trắc nghiệm."
	msgFeedbackPickTopic   = "💬 Gửi phản hồi\n\nChủ đề phản hồi của bạn là gì?"
	msgFeedbackPickRating  = "Bạn đánh giá Cổng Hướng nghiệp bao nhiêu sao?"
	msgFeedbackAskContact  = "Tài khoản Telegram của bạn chưa có username. Vui lòng nhập email để chúng tôi phản hồi:"
	msgFeedbackAskMessage  = "Hãy nhập nội dung phản hồi của bạn:"
	msgBookmarkAdded       = "Đã lưu ★"
	msgBookmarkRemoved     = "Đã bỏ lưu"
	msgStaleCallbackAnswer = "Nút này không còn hiệu lực."
	msgMediaProfileHint    = "💡 Chọn “%s” để xem nội dung dành riêng cho bạn."
)

const msgHelp = `📋 Danh sách lệnh

/start — bắt đầu
/profile — chọn đối tượng (học sinh, sau đại học, người đi làm)
/careers [từ khóa] — ngân hàng nghề nghiệp
/media — video và podcast hướng nghiệp
/stories — câu chuyện thành công
/resources — tài liệu, e-book, checklist, webinar
/admissions — ngành học, du học, mẹo phỏng vấn và CV
/quiz — trắc nghiệm tính cách nghề nghiệp
/result — kết quả trắc nghiệm gần nhất
/bookmarks — mục đã lưu
/feedback — gửi phản hồi
/help — trợ giúp

Bạn cũng có thể gửi một từ khóa bất kỳ để tìm nghề nghiệp.`

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// link renders a MarkdownV2 inline link.
func link(text, url string) string {
	url = strings.NewReplacer(`\`, `\\`, `)`, `\)`).Replace(url)
	return "[" + md(text) + "](" + url + ")"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	edit.DisableWebPagePreview = true
	return edit
}
