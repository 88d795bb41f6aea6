package handler

import (
	"github.com/gin-gonic/gin"
)

// Todas las respuestas llevan un flag success; los fallos viajan como
// resultado estructurado con mensaje, nunca como fault sin manejar.

// ok responde 200 con success:true y los campos extra de payload.
func ok(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(200, body)
}

// fail responde con success:false y el mensaje de error dado.
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}
