package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avinashj/socratic/internal/tutor"
)

type startRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Topic     string `json:"topic" binding:"required"`
	Level     string `json:"level"`
}

type answerRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Answer    string `json:"answer"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStart(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.engine.Start(c.Request.Context(), req.StudentID, req.Topic, tutor.ParseLevel(req.Level))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Question generation failed entirely; the session is already
	// terminated with an early-ended summary.
	if sess.Outcome != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"session_id":  sess.State.Key,
			"ended_early": true,
			"summary":     sess.Outcome.Summary,
		})
		return
	}

	s.putSession(sess)

	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.State.Key,
		"topic":      sess.State.Topic,
		"level":      sess.State.Level,
		"question":   sess.Question(),
	})
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := s.session(req.SessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	step, err := sess.Submit(c.Request.Context(), req.Answer)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"correct":  step.Evaluation.Correct,
		"score":    step.Evaluation.Score,
		"feedback": step.Evaluation.Feedback,
		"level":    step.Level,
		"accuracy": step.Accuracy,
		"done":     step.Done,
	}
	if step.Explanation != "" {
		resp["explanation"] = step.Explanation
	}
	if step.NextQuestion != "" {
		resp["next_question"] = step.NextQuestion
	}
	if step.Done {
		resp["summary"] = step.Outcome.Summary
		resp["progress_saved"] = step.Outcome.ProgressSaved
		s.dropSession(req.SessionID)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSessionProgress(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	state := sess.State
	c.JSON(http.StatusOK, gin.H{
		"session_id":      state.Key,
		"student_id":      state.StudentID,
		"topic":           state.Topic,
		"level":           state.Level,
		"questions_asked": state.QuestionsAsked,
		"correct_answers": state.CorrectAnswers,
		"accuracy":        state.Accuracy(),
		"active":          state.Active,
	})
}

func (s *Server) handleEnd(c *gin.Context) {
	id := c.Param("id")
	sess, ok := s.session(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	res := sess.End(c.Request.Context())
	s.dropSession(id)

	c.JSON(http.StatusOK, gin.H{
		"summary":        res.Summary,
		"level":          res.Level,
		"progress_saved": res.ProgressSaved,
	})
}

func (s *Server) handleStudentProgress(c *gin.Context) {
	student := c.Param("student")

	prog, err := s.progress.Load(c.Request.Context(), student)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"student_id":       student,
		"progress":         prog,
		"overall_accuracy": prog.OverallAccuracy(),
	})
}
