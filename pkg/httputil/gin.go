package httputil

import "github.com/gin-gonic/gin"

// WriteData は成功レスポンスをGinレスポンスとして書き込む。
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, NewSuccess(data, ""))
}

// WriteMessage はメッセージ付きの成功レスポンスを書き込む。
func WriteMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, NewSuccess(data, message))
}

// WriteError はFailureをGinレスポンスとして書き込む。
func WriteError(c *gin.Context, failure *Failure) {
	c.JSON(failure.Status, failure)
}

// AbortWithError はFailureをGinレスポンスとして書き込み、リクエスト処理を中断する。
func AbortWithError(c *gin.Context, failure *Failure) {
	c.AbortWithStatusJSON(failure.Status, failure)
}
