package dto

// UpdateRoleRequest is the body for PUT /admin/users/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// AdminStatsResponse aggregates portal-wide counts.
type AdminStatsResponse struct {
	Users        int64 `json:"users"`
	Quizzes      int64 `json:"quizzes"`
	Attempts     int64 `json:"attempts"`
	Certificates int64 `json:"certificates"`
	Resources    int64 `json:"resources"`
}
