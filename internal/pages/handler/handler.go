package handler

import (
	"net/http"

	"callcenter-webhooks/internal/observability"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

type Handler struct {
	logger *observability.Logger
}

func New(logger *observability.Logger) Handler {
	return Handler{
		logger: logger,
	}
}

// HandleHome handles GET /
func (h *Handler) HandleHome(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, []byte(homePage))
}

// HandleTest handles GET /test
func (h *Handler) HandleTest(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, []byte(testPage))
}

const homePage = `<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
    <meta charset="utf-8">
    <title>مركز الاتصال الذكي</title>
</head>
<body style="font-family: Arial; text-align: center; padding: 30px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; min-height: 100vh;">
    <h1 style="font-size: 48px; margin-bottom: 20px;">مركز الاتصال الذكي</h1>
    <h2 style="color: #90EE90; margin-bottom: 30px;">الخدمة تعمل بنجاح</h2>

    <div style="background: rgba(255,255,255,0.1); padding: 30px; border-radius: 15px; margin: 30px auto; max-width: 600px;">
        <h3 style="color: #FFD700; margin-bottom: 20px;">ما ستسمعه عند الاتصال:</h3>
        <ul style="color: #E0E0E0; font-size: 16px;">
            <li>رسالة ترحيب حسب بلد المتصل</li>
            <li>طلب تسجيل رسالة بعد الصوت</li>
            <li>رد حسب طول الرسالة المسجلة</li>
            <li>إنهاء مهذب للمكالمة</li>
        </ul>
    </div>

    <div style="background: rgba(255,255,255,0.1); padding: 20px; border-radius: 10px; margin: 20px auto; max-width: 500px;">
        <h4 style="color: #FFD700;">نقاط الاستقبال:</h4>
        <p dir="ltr">/voice-callback &middot; /recording-callback &middot; /status-callback</p>
    </div>

    <div style="margin: 30px;">
        <a href="/test" style="background: #28a745; color: white; padding: 15px 30px; text-decoration: none; border-radius: 25px; font-size: 18px; margin: 10px; display: inline-block;">اختبار النظام</a>
        <a href="/test-voice" style="background: #17a2b8; color: white; padding: 15px 30px; text-decoration: none; border-radius: 25px; font-size: 18px; margin: 10px; display: inline-block;">اختبار الصوت</a>
    </div>

    <footer style="margin-top: 50px; color: #B0B0B0;">
        <p>Smart Call Center</p>
    </footer>
</body>
</html>
`

const testPage = `<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
    <meta charset="utf-8">
    <title>اختبار النظام</title>
</head>
<body style="font-family: Arial; text-align: center; padding: 30px;">
    <h1>اختبار النظام</h1>
    <p style="color: green; font-size: 20px;">الخادم يعمل بنجاح</p>

    <div style="background: #e8f5e8; padding: 20px; border-radius: 10px; margin: 20px;">
        <h3>معلومات الخادم:</h3>
        <p><strong>Status:</strong> Online</p>
        <p><strong>Voice webhook:</strong> /voice-callback</p>
        <p><strong>Recording webhook:</strong> /recording-callback</p>
        <p><strong>Status webhook:</strong> /status-callback</p>
    </div>

    <div style="margin: 20px;">
        <a href="/test-voice" style="background: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">اختبار TwiML</a>
    </div>
</body>
</html>
`
