// @title        Grocer API
// @version      1.0
// @description  Grocer 商店的 JSON API（商品、購物車、訂單、意見回饋）
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
