package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/goliatone/go-formbuilder/pkg/defaults"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/project"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(s.metrics.handler()))

	api := s.echo.Group("/api")

	api.POST("/generate", s.generate)
	api.POST("/uischema", s.regenerateUISchema)
	api.POST("/validate", s.validate)

	api.GET("/templates", s.listTemplates)
	api.GET("/template", s.template)

	api.GET("/projects", s.listProjects)
	api.POST("/projects", s.createProject)
	api.GET("/projects/:id", s.getProject)
	api.PUT("/projects/:id", s.updateProject)
	api.DELETE("/projects/:id", s.deleteProject)
	api.GET("/projects/:id/files", s.projectFiles)

	api.GET("/current", s.getCurrent)
	api.PUT("/current", s.putCurrent)
}

// documents is the request body shared by most endpoints: the three texts a
// user edits.
type documents struct {
	Name       string `json:"name,omitempty"`
	JSONSchema string `json:"jsonSchema"`
	UISchema   string `json:"uiSchema"`
	Data       string `json:"data"`
}

func (s *Server) generate(c echo.Context) error {
	var req documents
	if err := c.Bind(&req); err != nil {
		return err
	}
	release, err := s.acquire(c)
	if err != nil {
		return err
	}
	defer release()

	result := s.generator.GenerateFromData(req.Data)
	s.metrics.recordGeneration("generate", result.Error == "")
	if result.Error != "" {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) regenerateUISchema(c echo.Context) error {
	var req documents
	if err := c.Bind(&req); err != nil {
		return err
	}
	release, err := s.acquire(c)
	if err != nil {
		return err
	}
	defer release()

	ui, err := s.generator.RegenerateUISchema(req.JSONSchema)
	s.metrics.recordGeneration("uischema", err == nil)
	if err != nil {
		var genErr *orchestrator.Error
		if errors.As(err, &genErr) {
			return c.JSON(http.StatusUnprocessableEntity, orchestrator.Result{Error: genErr.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, orchestrator.Result{UISchema: ui})
}

type validateResponse struct {
	Valid    bool                               `json:"valid"`
	Syntax   map[string]validation.JSONResult   `json:"syntax"`
	Data     *validation.SchemaValidationResult `json:"data,omitempty"`
	UISchema *validation.SchemaValidationResult `json:"uiSchema,omitempty"`
}

// validate checks the syntax of every document supplied, then the data and
// the UI schema against the JSON Schema when they parse.
func (s *Server) validate(c echo.Context) error {
	var req documents
	if err := c.Bind(&req); err != nil {
		return err
	}
	release, err := s.acquire(c)
	if err != nil {
		return err
	}
	defer release()

	resp := validateResponse{Valid: true, Syntax: map[string]validation.JSONResult{}}
	check := func(name, text string) bool {
		if text == "" {
			return false
		}
		result := validation.ValidateJSON(text)
		result.Parsed = nil
		resp.Syntax[name] = result
		if !result.Valid {
			resp.Valid = false
		}
		return result.Valid
	}

	schemaOK := check("jsonSchema", req.JSONSchema)
	dataOK := check("data", req.Data)
	uiOK := check("uiSchema", req.UISchema)

	if schemaOK && dataOK {
		result := validation.ValidateData(req.JSONSchema, req.Data)
		resp.Data = &result
		resp.Valid = resp.Valid && result.Valid
	}
	if schemaOK && uiOK {
		result := validation.ValidateUISchema(req.JSONSchema, req.UISchema)
		resp.UISchema = &result
		resp.Valid = resp.Valid && result.Valid
	}
	s.metrics.recordValidation(resp.Valid)
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) listTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, defaults.Names())
}

func (s *Server) template(c echo.Context) error {
	tpl, err := defaults.Lookup(c.QueryParam("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown template")
	}
	return c.JSON(http.StatusOK, tpl)
}

func (s *Server) listProjects(c echo.Context) error {
	projects, err := s.repo.Search(c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) createProject(c echo.Context) error {
	var req documents
	if err := c.Bind(&req); err != nil {
		return err
	}
	p, err := s.repo.Create(req.Name, req.JSONSchema, req.UISchema, req.Data)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) getProject(c echo.Context) error {
	p, err := s.repo.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// updateProject replaces the documents of an existing project. An empty
// name keeps the stored one.
func (s *Server) updateProject(c echo.Context) error {
	existing, err := s.repo.Get(c.Param("id"))
	if err != nil {
		return err
	}
	var req documents
	if err := c.Bind(&req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) != "" {
		existing.Name = req.Name
	}
	existing.JSONSchema = req.JSONSchema
	existing.UISchema = req.UISchema
	existing.Data = req.Data

	saved, err := s.repo.Save(existing)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteProject(c echo.Context) error {
	if err := s.repo.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type filesResponse struct {
	Filename string         `json:"filename"`
	Files    []project.File `json:"files"`
}

func (s *Server) projectFiles(c echo.Context) error {
	p, err := s.repo.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, filesResponse{
		Filename: project.SanitizeFilename(p.Name),
		Files:    project.Files(p),
	})
}

func (s *Server) getCurrent(c echo.Context) error {
	current, err := s.repo.Current()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, current)
}

func (s *Server) putCurrent(c echo.Context) error {
	var req documents
	if err := c.Bind(&req); err != nil {
		return err
	}
	current, err := s.repo.SaveCurrent(req.JSONSchema, req.UISchema, req.Data)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, current)
}
