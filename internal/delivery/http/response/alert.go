package response

import "github.com/gin-gonic/gin"

// Alert headers tell the web client which notification to show:
//
//	X-<app>-alert:  <app>.<entity>.created
//	X-<app>-params: <id>
//
// Errors tagged with an entity use X-<app>-error: error.<key> instead.
type Alerts struct {
	AppName string
}

func (a Alerts) alertHeader() string  { return "X-" + a.AppName + "-alert" }
func (a Alerts) paramsHeader() string { return "X-" + a.AppName + "-params" }
func (a Alerts) errorHeader() string  { return "X-" + a.AppName + "-error" }

func (a Alerts) Alert(c *gin.Context, message, param string) {
	c.Header(a.alertHeader(), message)
	c.Header(a.paramsHeader(), param)
}

func (a Alerts) EntityCreated(c *gin.Context, entityName, id string) {
	a.Alert(c, a.AppName+"."+entityName+".created", id)
}

func (a Alerts) EntityUpdated(c *gin.Context, entityName, id string) {
	a.Alert(c, a.AppName+"."+entityName+".updated", id)
}

func (a Alerts) EntityDeleted(c *gin.Context, entityName, id string) {
	a.Alert(c, a.AppName+"."+entityName+".deleted", id)
}

// Failure tags an error response with its entity kind and error key
func (a Alerts) Failure(c *gin.Context, entityName, errorKey string) {
	c.Header(a.errorHeader(), "error."+errorKey)
	c.Header(a.paramsHeader(), entityName)
}
