package models

type UserRole string

const (
	UserRoleWorker   UserRole = "worker"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"
)

type ChangaStatus string

const (
	ChangaStatusOpen      ChangaStatus = "open"
	ChangaStatusAssigned  ChangaStatus = "assigned"
	ChangaStatusDone      ChangaStatus = "done"
	ChangaStatusCancelled ChangaStatus = "cancelled"
)
