package api

import (
	pagesHandler "callcenter-webhooks/internal/pages/handler"
	voiceCallHandler "callcenter-webhooks/internal/voicecall/handler"
	"callcenter-webhooks/internal/voicecall/processor"
	"net/http"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	voiceCallHandler voiceCallHandler.Handler
	pagesHandler     pagesHandler.Handler
	callbackAuth     []gin.HandlerFunc
}

// New wires the route table. callbackAuth runs before every provider callback
// (e.g. signature verification) and may be empty.
func New(router *gin.RouterGroup, voiceCallHandler voiceCallHandler.Handler, pagesHandler pagesHandler.Handler, callbackAuth ...gin.HandlerFunc) API {
	return API{
		router:           router,
		voiceCallHandler: voiceCallHandler,
		pagesHandler:     pagesHandler,
		callbackAuth:     callbackAuth,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	callbacks := a.router.Group("/", a.callbackAuth...)
	{
		voice := a.voiceCallHandler.TwiMLRecovery(processor.FallbackApology)
		callbacks.GET("/voice-callback", voice, a.voiceCallHandler.HandleVoiceCallback)
		callbacks.POST("/voice-callback", voice, a.voiceCallHandler.HandleVoiceCallback)
		callbacks.POST("/recording-callback", a.voiceCallHandler.TwiMLRecovery(processor.FallbackThankYou), a.voiceCallHandler.HandleRecordingCallback)
		callbacks.POST("/status-callback", a.voiceCallHandler.HandleStatusCallback)
	}

	a.router.GET("/test-voice", a.voiceCallHandler.TwiMLRecovery(processor.FallbackApology), a.voiceCallHandler.HandleTestVoice)
	a.router.GET("/test", a.pagesHandler.HandleTest)
	a.router.GET("/", a.pagesHandler.HandleHome)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
