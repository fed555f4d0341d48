package misc

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

type Status struct {
	Status string `json:"status"`
	Id     string `json:"id,omitempty"`
	Msg    string `json:"msg,omitempty"`
}

func StatusOK(id string) Status {
	return Status{Status: "success", Id: id}
}

func StatusErr(msg string) Status {
	return Status{Status: "error", Msg: msg}
}

func BindJSON(c *gin.Context, v interface{}) error {
	body := c.Request.Body
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}
