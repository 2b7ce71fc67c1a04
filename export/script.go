package export

import (
	"encoding/json"
	"fmt"
	"strings"
)

// entry pairs an identifier with the role that produced it. Role may be
// empty when the identifier is known only from the collision registry.
type entry struct {
	ID   string `json:"id"`
	Role string `json:"role,omitempty"`
}

// manifest is the JSON export payload.
type manifest struct {
	Session     string  `json:"session,omitempty"`
	Count       int     `json:"count"`
	Identifiers []entry `json:"identifiers"`
}

// elementQuery maps a role to the XCUIElementQuery collection used to
// locate it. Unknown roles fall back to otherElements, which matches any
// element by accessibility identifier.
func elementQuery(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "button":
		return "buttons"
	case "textfield", "field", "input":
		return "textFields"
	case "securefield", "password":
		return "secureTextFields"
	case "toggle", "switch":
		return "switches"
	case "slider":
		return "sliders"
	case "text", "label", "statictext":
		return "staticTexts"
	case "image", "icon":
		return "images"
	case "item", "cell", "row":
		return "cells"
	case "link":
		return "links"
	default:
		return "otherElements"
	}
}

// actionStatement returns the interaction statement implied by the role,
// or "" when the role is lookup-only.
func actionStatement(role, element string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "button", "toggle", "switch", "item", "cell", "row", "link":
		return element + ".tap()"
	case "textfield", "field", "input", "securefield", "password":
		return element + ".tap()\n        " + element + ".typeText(\"sample\")"
	default:
		return ""
	}
}

// swiftEscape makes an identifier safe inside a Swift string literal.
// Generated identifiers never need it, exact-name identifiers might.
func swiftEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// swiftFuncName derives a distinct test method suffix from a position.
func swiftFuncName(i int) string {
	return fmt.Sprintf("testElement%03d", i)
}

// renderXCUITest produces a well-formed XCTest source file. One test
// method per identifier keeps failures attributable to a single element.
func renderXCUITest(session string, entries []entry) string {
	var b strings.Builder

	b.WriteString("// Generated UI test stubs for identifiers produced by sixlayer-autoid.\n")
	if session != "" {
		fmt.Fprintf(&b, "// Session: %s\n", session)
	}
	fmt.Fprintf(&b, "// Identifiers: %d\n", len(entries))
	b.WriteString("\nimport XCTest\n\n")
	b.WriteString("final class GeneratedIdentifierTests: XCTestCase {\n\n")
	b.WriteString("    private var app: XCUIApplication!\n\n")
	b.WriteString("    override func setUpWithError() throws {\n")
	b.WriteString("        continueAfterFailure = false\n")
	b.WriteString("        app = XCUIApplication()\n")
	b.WriteString("        app.launch()\n")
	b.WriteString("    }\n")

	for i, e := range entries {
		id := swiftEscape(e.ID)
		element := fmt.Sprintf("app.%s[\"%s\"]", elementQuery(e.Role), id)

		b.WriteString("\n")
		if e.Role != "" {
			fmt.Fprintf(&b, "    // role: %s\n", e.Role)
		}
		fmt.Fprintf(&b, "    func %s() throws {\n", swiftFuncName(i))
		fmt.Fprintf(&b, "        XCTAssertTrue(%s.waitForExistence(timeout: 5))\n", element)
		if action := actionStatement(e.Role, element); action != "" {
			fmt.Fprintf(&b, "        %s\n", action)
		}
		b.WriteString("    }\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// renderJSON produces the manifest payload.
func renderJSON(session string, entries []entry) (string, error) {
	payload := manifest{
		Session:     session,
		Count:       len(entries),
		Identifiers: entries,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return string(data) + "\n", nil
}

// renderText produces one identifier per line.
func renderText(entries []entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.ID)
		b.WriteString("\n")
	}
	return b.String()
}
