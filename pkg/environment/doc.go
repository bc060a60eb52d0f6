// Package environment names the deployment a process runs in and carries it
// through request contexts.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	r.Use(environment.Middleware(env))
//
// Handlers use FromContext or IsProduction to decide how much detail a
// response may expose.
package environment
