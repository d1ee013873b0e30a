// @title           BrandMatch API
// @version         1.0
// @description     Marketplace backend connecting brands with content creators.
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "brandmatch_backend/internal/app"

func main() {
	app.Run()
}
