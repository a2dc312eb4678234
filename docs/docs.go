// Package docs holds the swagger spec served at /swagger/index.html.
// Regenerate with: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"termsOfService": "http://swagger.io/terms/",
		"contact": {
			"name": "API Support",
			"url": "http://example.com/support",
			"email": "support@example.com"
		},
		"license": {
			"name": "Apache 2.0",
			"url": "http://www.apache.org/licenses/LICENSE-2.0.html"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/admin/lessons": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Admin - Content"
				],
				"summary": "(Admin) Create a lesson with its exercises",
				"parameters": [
					{
						"description": "Lesson and ordered exercises",
						"name": "lesson_data",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LessonCreateDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.LessonResponseDTO"
						}
					},
					"400": {
						"description": "Invalid input data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Lesson title already exists",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"422": {
						"description": "Exercise content is invalid",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/admin/tests": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Admin - Content"
				],
				"summary": "(Admin) Create a test",
				"parameters": [
					{
						"description": "Test with its questions and gating lessons",
						"name": "test_data",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.TestCreateDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.TestResponseDTO"
						}
					},
					"400": {
						"description": "Invalid input data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Test name already exists",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"422": {
						"description": "Unknown lesson or invalid question",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/exercise-sessions/{session_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Lessons"
				],
				"summary": "(User) Get an exercise session",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExerciseSessionResponse"
						}
					},
					"404": {
						"description": "Session not found or expired",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/exercise-sessions/{session_id}/answers": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Lessons"
				],
				"summary": "(User) Answer the presented exercise",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SubmitAnswerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExerciseAnswerResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Session is not presenting an exercise",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Answer could not be stored; resubmit",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/exercise-sessions/{session_id}/continue": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Lessons"
				],
				"summary": "(User) Move to the next unfinished exercise",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExerciseSessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Lesson already completed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/exercise-sessions/{session_id}/practice": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Lessons"
				],
				"summary": "(User) Replay a completed lesson without recording answers",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExerciseSessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Lesson not completed yet",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/exercises/{exercise_id}/answers": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Lessons"
				],
				"summary": "(User) Record an answer to a single exercise",
				"parameters": [
					{
						"type": "integer",
						"description": "Exercise Id",
						"name": "exercise_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SubmitExerciseAnswerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExerciseResultDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Exercise not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/lessons/{lesson_id}/progress": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Lessons"
				],
				"summary": "(User) Lesson progress",
				"parameters": [
					{
						"type": "integer",
						"description": "Lesson Id",
						"name": "lesson_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "User ID",
						"name": "user_id",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LessonProgressDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Lesson not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/lessons/{lesson_id}/sessions": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Lessons"
				],
				"summary": "(User) Start an exercise session",
				"parameters": [
					{
						"type": "integer",
						"description": "Lesson Id",
						"name": "lesson_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.StartSessionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.ExerciseSessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Lesson not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/lessons/{lesson_id}/test-sessions": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Open a test session listing the lesson's tests",
				"parameters": [
					{
						"type": "integer",
						"description": "Lesson Id",
						"name": "lesson_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.StartSessionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Lesson not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/lessons/{lesson_id}/tests": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Tests attached to a lesson",
				"parameters": [
					{
						"type": "integer",
						"description": "Lesson Id",
						"name": "lesson_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "User ID",
						"name": "user_id",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.TestSummaryDTO"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Lesson not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/test-sessions/{session_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Get a test session",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"404": {
						"description": "Session not found or expired",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/test-sessions/{session_id}/answers": {
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Record or clear an answer in the running test",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SetTestAnswerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"400": {
						"description": "Invalid body or exercise not in test",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Session is not taking a test",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/test-sessions/{session_id}/next": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Move to the next question",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/test-sessions/{session_id}/previous": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Move to the previous question",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/test-sessions/{session_id}/retake": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Return to test selection after a result",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/test-sessions/{session_id}/start": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Pick a test from the session's list",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ChooseTestRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Lessons not completed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Session is not selecting a test",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/test-sessions/{session_id}/submit": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Grade and store the running test",
				"parameters": [
					{
						"type": "string",
						"description": "Session handle",
						"name": "session_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Not taking a test, or attempt numbering conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Attempt could not be stored; resubmit",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/tests/{test_id}/attempts": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Submit answers for a test in one request",
				"parameters": [
					{
						"type": "integer",
						"description": "Test Id",
						"name": "test_id",
						"in": "path",
						"required": true
					},
					{
						"description": "User answers",
						"name": "attempt",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.TestAttemptSubmitDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.TestAttemptResponseDTO"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Lessons not completed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Test not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/tests/{test_id}/gate": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Check whether a test is unlocked",
				"parameters": [
					{
						"type": "integer",
						"description": "Test Id",
						"name": "test_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "User ID",
						"name": "user_id",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.GateDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Test not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/tests/{test_id}/my-attempts": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Attempt history for a test",
				"parameters": [
					{
						"type": "integer",
						"description": "Test Id",
						"name": "test_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "User ID",
						"name": "user_id",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TestAttemptHistoryDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Test not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/tests/{test_id}/sessions": {
			"post": {
				"description": "Returns the stored result without opening a session when the test is already passed, unless retake is set.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"User - Tests"
				],
				"summary": "(User) Start taking a test",
				"parameters": [
					{
						"type": "integer",
						"description": "Test Id",
						"name": "test_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.StartTestRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.TestSessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Lessons not completed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Test not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"422": {
						"description": "Test has no questions",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.AdminExerciseResponseDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"order_index": {
					"type": "integer"
				},
				"question": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"focus": {
					"type": "string"
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"answer": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"explanation": {
					"type": "string"
				},
				"image_url": {
					"type": "string"
				}
			}
		},
		"dto.ChooseTestRequest": {
			"type": "object",
			"required": [
				"test_id"
			],
			"properties": {
				"test_id": {
					"type": "integer"
				}
			}
		},
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"details": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.ExerciseAnswerResponse": {
			"type": "object",
			"properties": {
				"is_correct": {
					"type": "boolean"
				},
				"feedback": {
					"$ref": "#/definitions/dto.FeedbackDTO"
				},
				"session": {
					"$ref": "#/definitions/dto.ExerciseSessionResponse"
				}
			}
		},
		"dto.ExerciseCreateDTO": {
			"type": "object",
			"required": [
				"answer",
				"question",
				"type"
			],
			"properties": {
				"question": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"multiple_choice",
						"translate",
						"fill_in_the_blank",
						"image_translate"
					]
				},
				"focus": {
					"type": "string",
					"enum": [
						"vocabulary",
						"grammar"
					]
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"answer": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"explanation": {
					"type": "string"
				},
				"image_url": {
					"type": "string"
				}
			}
		},
		"dto.ExerciseResponseDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"order_index": {
					"type": "integer"
				},
				"question": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"focus": {
					"type": "string"
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"image_url": {
					"type": "string"
				}
			}
		},
		"dto.ExerciseResultDTO": {
			"type": "object",
			"properties": {
				"exercise_id": {
					"type": "integer"
				},
				"is_correct": {
					"type": "boolean"
				},
				"completed": {
					"type": "boolean"
				},
				"feedback": {
					"$ref": "#/definitions/dto.FeedbackDTO"
				}
			}
		},
		"dto.ExerciseSessionResponse": {
			"type": "object",
			"properties": {
				"session_id": {
					"type": "string"
				},
				"user_id": {
					"type": "integer"
				},
				"lesson_id": {
					"type": "integer"
				},
				"phase": {
					"type": "string"
				},
				"index": {
					"type": "integer"
				},
				"practice": {
					"type": "boolean"
				},
				"exercise": {
					"$ref": "#/definitions/dto.ExerciseResponseDTO"
				},
				"feedback": {
					"$ref": "#/definitions/dto.FeedbackDTO"
				},
				"progress": {
					"$ref": "#/definitions/dto.ProgressDTO"
				}
			}
		},
		"dto.FeedbackDTO": {
			"type": "object",
			"properties": {
				"show": {
					"type": "boolean"
				},
				"is_correct": {
					"type": "boolean"
				},
				"correct_answers": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"explanation": {
					"type": "string"
				}
			}
		},
		"dto.GateDTO": {
			"type": "object",
			"properties": {
				"test_id": {
					"type": "integer"
				},
				"unlocked": {
					"type": "boolean"
				},
				"first_incomplete_lesson_id": {
					"type": "integer"
				}
			}
		},
		"dto.LessonCreateDTO": {
			"type": "object",
			"required": [
				"title"
			],
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"exercises": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ExerciseCreateDTO"
					}
				}
			}
		},
		"dto.LessonProgressDTO": {
			"type": "object",
			"properties": {
				"lesson_id": {
					"type": "integer"
				},
				"user_id": {
					"type": "integer"
				},
				"progress": {
					"$ref": "#/definitions/dto.ProgressDTO"
				},
				"next_index": {
					"type": "integer"
				},
				"completed": {
					"type": "boolean"
				}
			}
		},
		"dto.LessonResponseDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"exercises": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AdminExerciseResponseDTO"
					}
				}
			}
		},
		"dto.ProgressDTO": {
			"type": "object",
			"properties": {
				"completed": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"percent": {
					"type": "integer"
				}
			}
		},
		"dto.SetTestAnswerRequest": {
			"type": "object",
			"required": [
				"exercise_id"
			],
			"properties": {
				"exercise_id": {
					"type": "integer"
				},
				"answer": {
					"description": "A single string or an array of strings",
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.StartSessionRequest": {
			"type": "object",
			"required": [
				"user_id"
			],
			"properties": {
				"user_id": {
					"type": "integer"
				}
			}
		},
		"dto.StartTestRequest": {
			"type": "object",
			"required": [
				"user_id"
			],
			"properties": {
				"user_id": {
					"type": "integer"
				},
				"retake": {
					"type": "boolean"
				}
			}
		},
		"dto.SubmitAnswerRequest": {
			"type": "object",
			"properties": {
				"answer": {
					"description": "A single string or an array of strings",
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.SubmitExerciseAnswerRequest": {
			"type": "object",
			"required": [
				"user_id"
			],
			"properties": {
				"user_id": {
					"type": "integer"
				},
				"answer": {
					"description": "A single string or an array of strings",
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.TestAnswerDTO": {
			"type": "object",
			"required": [
				"exercise_id"
			],
			"properties": {
				"exercise_id": {
					"type": "integer"
				},
				"answer": {
					"description": "A single string or an array of strings",
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.TestAttemptHistoryDTO": {
			"type": "object",
			"properties": {
				"test_id": {
					"type": "integer"
				},
				"user_id": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"attempts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.TestAttemptResponseDTO"
					}
				}
			}
		},
		"dto.TestAttemptResponseDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user_id": {
					"type": "integer"
				},
				"test_id": {
					"type": "integer"
				},
				"attempt_no": {
					"type": "integer"
				},
				"score": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"answers": {
					"type": "object",
					"additionalProperties": {
						"type": "array",
						"items": {
							"type": "string"
						}
					}
				},
				"results": {
					"type": "object",
					"additionalProperties": {
						"type": "boolean"
					}
				},
				"submitted_at": {
					"type": "string"
				}
			}
		},
		"dto.TestAttemptSubmitDTO": {
			"type": "object",
			"required": [
				"user_id"
			],
			"properties": {
				"user_id": {
					"type": "integer"
				},
				"answers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.TestAnswerDTO"
					}
				}
			}
		},
		"dto.TestCreateDTO": {
			"type": "object",
			"required": [
				"exercises",
				"name"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"pass_score": {
					"type": "integer",
					"maximum": 100,
					"minimum": 0
				},
				"lesson_ids": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"exercises": {
					"type": "array",
					"minItems": 1,
					"items": {
						"$ref": "#/definitions/dto.ExerciseCreateDTO"
					}
				}
			}
		},
		"dto.TestResponseDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"pass_score": {
					"type": "integer"
				},
				"total_questions": {
					"type": "integer"
				},
				"lesson_ids": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"exercises": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AdminExerciseResponseDTO"
					}
				}
			}
		},
		"dto.TestSessionResponse": {
			"type": "object",
			"properties": {
				"session_id": {
					"type": "string"
				},
				"user_id": {
					"type": "integer"
				},
				"state": {
					"type": "string",
					"enum": [
						"selecting",
						"taking",
						"completed"
					]
				},
				"lesson_id": {
					"type": "integer"
				},
				"tests": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.TestSummaryDTO"
					}
				},
				"test": {
					"$ref": "#/definitions/dto.TestSummaryDTO"
				},
				"question_index": {
					"type": "integer"
				},
				"completed_questions": {
					"type": "integer"
				},
				"question": {
					"$ref": "#/definitions/dto.ExerciseResponseDTO"
				},
				"answers": {
					"type": "object",
					"additionalProperties": {
						"type": "array",
						"items": {
							"type": "string"
						}
					}
				},
				"result": {
					"$ref": "#/definitions/dto.TestAttemptResponseDTO"
				},
				"already_passed": {
					"type": "boolean"
				}
			}
		},
		"dto.TestSummaryDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"total_questions": {
					"type": "integer"
				},
				"pass_score": {
					"type": "integer"
				},
				"lesson_ids": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"unlocked": {
					"type": "boolean"
				},
				"status": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "EnglishHub Learning API",
	Description:      "Lesson exercises with instant feedback, lesson-gated tests and attempt history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
