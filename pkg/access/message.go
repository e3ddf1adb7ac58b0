// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package access

import (
	"fmt"
	"strings"
)

// Messages holds the user-facing denial strings for one locale.
// RequiresPurchase receives the formatted price, RequiresPackage the
// uppercased package name.
type Messages struct {
	NotAuthenticated string
	RequiresPurchase string
	RequiresPackage  string
}

// Italian is the product's default message set.
var Italian = Messages{
	NotAuthenticated: "Accedi per partecipare",
	RequiresPurchase: "Acquista per €%.2f",
	RequiresPackage:  "Richiede il pacchetto %s",
}

// English message set.
var English = Messages{
	NotAuthenticated: "Sign in to participate",
	RequiresPurchase: "Purchase for €%.2f",
	RequiresPackage:  "Requires the %s package",
}

// DenialMessage renders a human-readable explanation for a denied
// verdict. Granted verdicts render empty.
func (v Verdict) DenialMessage(msgs Messages) string {
	switch v.Reason {
	case ReasonNotAuthenticated:
		return msgs.NotAuthenticated
	case ReasonRequiresPurchase:
		return fmt.Sprintf(msgs.RequiresPurchase, v.RequiredPrice)
	case ReasonRequiresPackage:
		return fmt.Sprintf(msgs.RequiresPackage, strings.ToUpper(string(v.RequiredPackage)))
	default:
		return ""
	}
}
