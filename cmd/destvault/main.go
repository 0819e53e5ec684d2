// Package main 启动应用程序
package main

import "github.com/yeisme/destvault/pkg/cmd"

//	@title			DestVault API
//	@version		1.0
//	@description	DestVault 是文件整理器的目标目录记忆服务，负责记录用户的驱动器、挂载点与常用目标文件夹及其使用统计。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
