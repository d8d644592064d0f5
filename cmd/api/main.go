package main

// @title           Profile Backend API
// @version         1.0
// @description     Profils and skills with full-text search.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	Execute()
}
