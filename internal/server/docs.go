package server

// @title Thema API
// @version 1.0
// @description Read-only REST API over the Thema subject category code list.
// @description
// @description Features:
// @description - Paged listing in source order
// @description - Case-insensitive lookup by code value
// @description - Search by text and by parent code
// @description - Direct children of any code
//
// @contact.name Thema API
// @contact.url https://github.com/agentstation/thema
//
// @license.name MIT
// @license.url https://github.com/agentstation/thema/blob/master/LICENSE
//
// @host localhost:3000
// @BasePath /api/v1
