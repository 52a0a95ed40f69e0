package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizmentor/internal/models"
)

type CourseHandler struct{}

func NewCourseHandler() *CourseHandler {
	return &CourseHandler{}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses := models.Courses()
	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   len(courses),
	})
}

func (h *CourseHandler) GetCourseByTopic(c *gin.Context) {
	course, ok := models.CourseByTopic(c.Param("topic"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}
