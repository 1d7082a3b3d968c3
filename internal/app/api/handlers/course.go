package handlers

import (
	"net/http"

	"github.com/fatflowers/coursehub/internal/app/api/middleware"
	"github.com/fatflowers/coursehub/internal/app/service/course"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/response"
	"github.com/gin-gonic/gin"
)

type LecturesResponse struct {
	Lectures []models.Lecture `json:"lectures"`
}

// @Summary      List Courses
// @Description  Lists courses without lectures. keyword matches the title, category the category.
// @Tags         Course
// @Produce      json
// @Param        keyword   query string false "Title substring"
// @Param        category  query string false "Category substring"
// @Success      200  {object}  handlers.RespCourses
// @Router       /api/v1/courses [get]
func ApiListCourses(svc *course.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req course.ListRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			_ = c.Error(apperr.Validation(err.Error()))
			return
		}
		res, err := svc.List(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Create Course (Admin)
// @Tags         Course
// @Accept       json
// @Produce      json
// @Param        request body course.CreateRequest true "Course"
// @Success      201  {object}  handlers.RespMessage
// @Router       /api/v1/createcourse [post]
func ApiCreateCourse(svc *course.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req course.CreateRequest
		if !bindJSON(c, &req) {
			return
		}
		if _, err := svc.Create(c.Request.Context(), req); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(MessageResponse{Message: "Course Created Successfully. You can add lectures now."}))
	}
}

// @Summary      Course Lectures
// @Description  Subscribers and admins only. Each read counts as one course view.
// @Tags         Course
// @Produce      json
// @Param        id path string true "Course id"
// @Success      200  {object}  handlers.RespLectures
// @Failure      403  {object}  handlers.RespOK
// @Router       /api/v1/course/{id} [get]
func ApiGetLectures(svc *course.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectures, err := svc.Lectures(c.Request.Context(), c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(LecturesResponse{Lectures: lectures}))
	}
}

// @Summary      Add Lecture (Admin)
// @Tags         Course
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Course id"
// @Param        request body course.AddLectureRequest  true "Lecture"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/course/{id} [post]
func ApiAddLecture(svc *course.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req course.AddLectureRequest
		if !bindJSON(c, &req) {
			return
		}
		if _, err := svc.AddLecture(c.Request.Context(), c.Param("id"), req); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Lecture added in Course"}))
	}
}

// @Summary      Delete Course (Admin)
// @Tags         Course
// @Produce      json
// @Param        id path string true "Course id"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/course/{id} [delete]
func ApiDeleteCourse(svc *course.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Course Deleted Successfully"}))
	}
}

// @Summary      Delete Lecture (Admin)
// @Tags         Course
// @Produce      json
// @Param        courseId   query string true "Course id"
// @Param        lectureId  query string true "Lecture id"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/lecture [delete]
func ApiDeleteLecture(svc *course.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteLecture(c.Request.Context(), c.Query("courseId"), c.Query("lectureId")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Lecture Deleted Successfully"}))
	}
}

func RegisterCourseRoutes(r gin.IRouter, authn gin.HandlerFunc, svc *course.Service) {
	admin := middleware.RequireAdmin()
	r.GET("/courses", ApiListCourses(svc))
	r.POST("/createcourse", authn, admin, ApiCreateCourse(svc))
	r.GET("/course/:id", authn, middleware.RequireSubscriber(), ApiGetLectures(svc))
	r.POST("/course/:id", authn, admin, ApiAddLecture(svc))
	r.DELETE("/course/:id", authn, admin, ApiDeleteCourse(svc))
	r.DELETE("/lecture", authn, admin, ApiDeleteLecture(svc))
}
