package bootstrap

import "github.com/gin-gonic/gin"

func SetGinMode(env string) {
	switch env {
	case "production", "release":
		gin.SetMode(gin.ReleaseMode)
	}
}
