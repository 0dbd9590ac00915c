package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thenoetrevino/focup/internal/cli/styles"
	"github.com/thenoetrevino/focup/internal/models"
)

// markdownWidth is the wrap width for --pretty output
const markdownWidth = 80

// OutputFormatter handles the output modes: JSON, quiet, pretty (markdown)
// and plain human-readable
type OutputFormatter struct {
	JSON   bool
	Quiet  bool
	Pretty bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int64 }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
		if tasks, ok := data.([]models.Task); ok {
			for _, task := range tasks {
				fmt.Printf("%d\n", task.ID)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	if f.Pretty {
		if tasks, ok := data.([]models.Task); ok {
			out, err := styles.RenderMarkdown(styles.Checklist(tasks), markdownWidth)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	switch v := data.(type) {
	case *models.Task:
		fmt.Println(styles.RenderTaskLine(*v))
	case models.Task:
		fmt.Println(styles.RenderTaskLine(v))
	case []models.Task:
		if len(v) == 0 {
			fmt.Println(styles.SubtitleStyle.Render("No tasks yet."))
			return nil
		}
		for _, task := range v {
			fmt.Println(styles.RenderTaskLine(task))
		}
	case string:
		fmt.Println(v)
	case fmt.Stringer:
		fmt.Println(v.String())
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}
