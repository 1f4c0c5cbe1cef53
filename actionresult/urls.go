package actionresult

import (
	"fmt"

	"github.com/gorilla/mux"

	"github.com/resultassert/resultassert/framework/helpers"
)

// MuxURLs generates URLs from the named routes of a gorilla/mux router.
//
// An action URL is the URL of the route named "<controller>.<action>", or just "<action>" if
// there is no controller name.
type MuxURLs struct {
	Router *mux.Router
}

// ActionRouteName returns the route name that MuxURLs uses for an action.
func ActionRouteName(actionName, controllerName string) string {
	if controllerName == "" {
		return actionName
	}
	return controllerName + "." + actionName
}

func (u MuxURLs) RouteURL(routeName string, values RouteValues) (string, error) {
	if u.Router == nil {
		return "", ErrNoURLGenerator
	}
	route := u.Router.Get(routeName)
	if route == nil {
		return "", fmt.Errorf("no route named %q", routeName)
	}
	varNames, err := route.GetVarNames()
	if err != nil {
		return "", fmt.Errorf("route %q: %w", routeName, err)
	}

	pairs := make([]string, 0, len(varNames)*2)
	used := make(map[string]bool, len(varNames))
	for _, name := range varNames {
		value, ok := values[name]
		if !ok {
			return "", fmt.Errorf("route %q requires a value for %q", routeName, name)
		}
		pairs = append(pairs, name, fmt.Sprint(value))
		used[name] = true
	}
	built, err := route.URL(pairs...)
	if err != nil {
		return "", fmt.Errorf("route %q: %w", routeName, err)
	}

	query := built.Query()
	for _, key := range helpers.SortedKeys(values) {
		if !used[key] {
			query.Add(key, fmt.Sprint(values[key]))
		}
	}
	built.RawQuery = query.Encode()
	return built.String(), nil
}

func (u MuxURLs) ActionURL(actionName, controllerName string, values RouteValues) (string, error) {
	return u.RouteURL(ActionRouteName(actionName, controllerName), values)
}
