package actionresult

import (
	"fmt"
	"strings"
)

// Kind identifies one of the closed set of result shapes. Its String value is the name that
// appears in assertion labels, for instance "CreatedAtRouteResult".
type Kind int

const (
	KindEmpty Kind = iota
	KindStatusCode
	KindObject
	KindContent
	KindJSON
	KindCreated
	KindCreatedAtAction
	KindCreatedAtRoute
	KindAccepted
	KindAcceptedAtAction
	KindAcceptedAtRoute
	KindRedirect
	KindLocalRedirect
	KindRedirectToAction
	KindRedirectToRoute
	KindFileContent
	KindFileStream
	KindPhysicalFile
	KindView
	KindPartialView
	KindChallenge
	KindForbid
	KindSignIn
	KindSignOut
)

var kindNames = [...]string{ //nolint:gochecknoglobals
	KindEmpty:            "EmptyResult",
	KindStatusCode:       "StatusCodeResult",
	KindObject:           "ObjectResult",
	KindContent:          "ContentResult",
	KindJSON:             "JsonResult",
	KindCreated:          "CreatedResult",
	KindCreatedAtAction:  "CreatedAtActionResult",
	KindCreatedAtRoute:   "CreatedAtRouteResult",
	KindAccepted:         "AcceptedResult",
	KindAcceptedAtAction: "AcceptedAtActionResult",
	KindAcceptedAtRoute:  "AcceptedAtRouteResult",
	KindRedirect:         "RedirectResult",
	KindLocalRedirect:    "LocalRedirectResult",
	KindRedirectToAction: "RedirectToActionResult",
	KindRedirectToRoute:  "RedirectToRouteResult",
	KindFileContent:      "FileContentResult",
	KindFileStream:       "FileStreamResult",
	KindPhysicalFile:     "PhysicalFileResult",
	KindView:             "ViewResult",
	KindPartialView:      "PartialViewResult",
	KindChallenge:        "ChallengeResult",
	KindForbid:           "ForbidResult",
	KindSignIn:           "SignInResult",
	KindSignOut:          "SignOutResult",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// AllKinds returns every defined Kind in declaration order.
func AllKinds() []Kind {
	ret := make([]Kind, 0, len(kindNames))
	for i := range kindNames {
		ret = append(ret, Kind(i))
	}
	return ret
}

// ParseKind finds the Kind whose String value is name. It also accepts the name without its
// "Result" suffix, so "Json" and "JsonResult" are both KindJSON. Case is ignored.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if strings.EqualFold(name, n) || strings.EqualFold(name+"Result", n) {
			return Kind(i), true
		}
	}
	return 0, false
}
