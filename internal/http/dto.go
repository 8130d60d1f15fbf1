package http

import (
	"time"

	"wayfinder/internal/domain"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Color1   string `json:"color1" binding:"omitempty,max=7"`
	Color2   string `json:"color2" binding:"omitempty,max=7"`
	Color3   string `json:"color3" binding:"omitempty,max=7"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Color1    string `json:"color1,omitempty"`
	Color2    string `json:"color2,omitempty"`
	Color3    string `json:"color3,omitempty"`
	CreatedAt string `json:"created_at"`
}

type updateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Color1   *string `json:"color1" binding:"omitempty,max=7"`
	Color2   *string `json:"color2" binding:"omitempty,max=7"`
	Color3   *string `json:"color3" binding:"omitempty,max=7"`
}

type createTaskRequest struct {
	Title                    string `json:"title" binding:"required,max=255"`
	RefreshInterval          int    `json:"refresh_interval" binding:"required"`
	AlertThresholdPercentage int    `json:"alert_threshold_percentage" binding:"gte=0,lte=100"`
	IsActive                 *bool  `json:"is_active"`
	InitialRefreshInterval   *int   `json:"initial_refresh_interval"`
}

type updateTaskRequest struct {
	Title                    *string `json:"title" binding:"omitempty,max=255"`
	RefreshInterval          *int    `json:"refresh_interval"`
	AlertThresholdPercentage *int    `json:"alert_threshold_percentage" binding:"omitempty,gte=0,lte=100"`
	IsActive                 *bool   `json:"is_active"`
	InitialRefreshInterval   *int    `json:"initial_refresh_interval"`
}

type TaskResponse struct {
	ID                       int64   `json:"id"`
	Title                    string  `json:"title"`
	UserID                   int64   `json:"user_id"`
	LastFinishedDate         *string `json:"last_finished_date,omitempty"`
	RefreshInterval          int     `json:"refresh_interval"`
	AlertThresholdPercentage int     `json:"alert_threshold_percentage"`
	IsActive                 bool    `json:"is_active"`
	InitialRefreshInterval   int     `json:"initial_refresh_interval"`
	CreatedAt                string  `json:"created_at"`
}

type createRecordRequest struct {
	TaskID       int64      `json:"task_id" binding:"required"`
	FinishedDate *time.Time `json:"finished_date"`
	Status       string     `json:"status" binding:"required,max=50"`
}

type updateRecordRequest struct {
	FinishedDate *time.Time `json:"finished_date"`
	Status       *string    `json:"status" binding:"omitempty,max=50"`
}

type RecordResponse struct {
	ID           int64  `json:"id"`
	TaskID       int64  `json:"task_id"`
	FinishedDate string `json:"finished_date"`
	Status       string `json:"status"`
}

type createTagRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	TaskID int64  `json:"task_id" binding:"required"`
}

type updateTagRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	TaskID *int64  `json:"task_id"`
}

type TagResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TaskID int64  `json:"task_id"`
}

type createTaskTagRequest struct {
	TaskID int64 `json:"task_id" binding:"required"`
	TagID  int64 `json:"tag_id" binding:"required"`
}

type TaskTagResponse struct {
	ID     int64 `json:"id"`
	TaskID int64 `json:"task_id"`
	TagID  int64 `json:"tag_id"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Color1:    user.Color1,
		Color2:    user.Color2,
		Color3:    user.Color3,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func taskToResponse(task domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:                       task.ID,
		Title:                    task.Title,
		UserID:                   task.UserID,
		RefreshInterval:          task.RefreshInterval,
		AlertThresholdPercentage: task.AlertThresholdPercentage,
		IsActive:                 task.IsActive,
		InitialRefreshInterval:   task.InitialRefreshInterval,
		CreatedAt:                task.CreatedAt.Format(time.RFC3339),
	}
	if task.LastFinishedDate != nil {
		v := task.LastFinishedDate.Format(time.RFC3339)
		resp.LastFinishedDate = &v
	}
	return resp
}

func recordToResponse(record domain.Record) RecordResponse {
	return RecordResponse{
		ID:           record.ID,
		TaskID:       record.TaskID,
		FinishedDate: record.FinishedDate.Format(time.RFC3339),
		Status:       record.Status,
	}
}

func tagToResponse(tag domain.Tag) TagResponse {
	return TagResponse{
		ID:     tag.ID,
		Name:   tag.Name,
		TaskID: tag.TaskID,
	}
}

func taskTagToResponse(taskTag domain.TaskTag) TaskTagResponse {
	return TaskTagResponse{
		ID:     taskTag.ID,
		TaskID: taskTag.TaskID,
		TagID:  taskTag.TagID,
	}
}
