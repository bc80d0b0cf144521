package global

import (
	"github.com/noteful-labs/noteful-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Noteful Service"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
