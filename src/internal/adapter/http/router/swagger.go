package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>ATM Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "ATM Ledger API",
    "version": "1.0.0"
  },
  "paths": {
    "/sessions": {
      "post": {
        "summary": "Log in with account id and PIN",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "accountId",
                  "pin"
                ],
                "properties": {
                  "accountId": {
                    "type": "string"
                  },
                  "pin": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Session opened"
          },
          "400": {
            "description": "Validation error"
          },
          "401": {
            "description": "Invalid PIN"
          },
          "404": {
            "description": "Account not found"
          },
          "409": {
            "description": "Another session is active"
          },
          "423": {
            "description": "Account locked"
          }
        }
      },
      "delete": {
        "summary": "Log out",
        "security": [
          {
            "SessionToken": []
          }
        ],
        "responses": {
          "200": {
            "description": "Session closed"
          },
          "401": {
            "description": "Invalid session"
          }
        }
      }
    },
    "/account/balance": {
      "get": {
        "summary": "Current balance",
        "security": [
          {
            "SessionToken": []
          }
        ],
        "responses": {
          "200": {
            "description": "Balance"
          },
          "401": {
            "description": "Invalid session"
          }
        }
      }
    },
    "/account/withdraw": {
      "post": {
        "summary": "Withdraw cash",
        "security": [
          {
            "SessionToken": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "amount"
                ],
                "properties": {
                  "amount": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Withdrawn"
          },
          "400": {
            "description": "Validation error"
          },
          "401": {
            "description": "Invalid session"
          },
          "422": {
            "description": "Insufficient balance or withdrawal limit exceeded"
          }
        }
      }
    },
    "/account/deposit": {
      "post": {
        "summary": "Deposit cash",
        "security": [
          {
            "SessionToken": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "amount"
                ],
                "properties": {
                  "amount": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Deposited"
          },
          "400": {
            "description": "Validation error"
          },
          "401": {
            "description": "Invalid session"
          }
        }
      }
    },
    "/account/transfer": {
      "post": {
        "summary": "Transfer to another account",
        "security": [
          {
            "SessionToken": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "toAccountId",
                  "amount"
                ],
                "properties": {
                  "toAccountId": {
                    "type": "string"
                  },
                  "amount": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Transferred"
          },
          "400": {
            "description": "Validation error or same account"
          },
          "401": {
            "description": "Invalid session"
          },
          "404": {
            "description": "Recipient account not found"
          },
          "422": {
            "description": "Insufficient balance"
          }
        }
      }
    },
    "/account/history": {
      "get": {
        "summary": "Last ten transactions, oldest first",
        "security": [
          {
            "SessionToken": []
          }
        ],
        "responses": {
          "200": {
            "description": "History"
          },
          "401": {
            "description": "Invalid session"
          }
        }
      }
    },
    "/account/pin": {
      "post": {
        "summary": "Change PIN",
        "security": [
          {
            "SessionToken": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": [
                  "currentPin",
                  "newPin",
                  "confirmPin"
                ],
                "properties": {
                  "currentPin": {
                    "type": "string"
                  },
                  "newPin": {
                    "type": "string"
                  },
                  "confirmPin": {
                    "type": "string"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "PIN changed"
          },
          "400": {
            "description": "Validation error, mismatch or bad format"
          },
          "401": {
            "description": "Invalid session or current PIN"
          },
          "423": {
            "description": "Account locked, session closed"
          }
        }
      }
    },
    "/admin/accounts": {
      "get": {
        "summary": "List accounts",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "responses": {
          "200": {
            "description": "Accounts"
          },
          "401": {
            "description": "Unauthorized"
          }
        }
      }
    },
    "/admin/accounts/{accountID}/unlock": {
      "post": {
        "summary": "Unlock an account",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "parameters": [
          {
            "name": "accountID",
            "in": "path",
            "required": true,
            "schema": {
              "type": "string"
            }
          }
        ],
        "responses": {
          "200": {
            "description": "Unlocked"
          },
          "401": {
            "description": "Unauthorized"
          },
          "404": {
            "description": "Account not found"
          }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Liveness probe",
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      },
      "SessionToken": {
        "type": "apiKey",
        "in": "header",
        "name": "X-Session-Token"
      }
    }
  }
}`
