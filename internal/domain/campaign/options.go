package campaign

// Names the editor offers for each config list. They are suggestions only;
// any name is accepted.
var (
	NumberConfigNames = []string{
		"SUCCESS_STP",
		"EXAM_COURSE_ID",
		"RATING",
		"ACCEPT_WEEK_DAY",
	}

	RangeConfigNames = []string{
		"DISTANCE",
		"ACCEPT_WEEK_DAY",
		"ACCEPT_MINUTE",
		"ACCEPT_TIME",
		"DEPOSIT_ACCOUNT",
		"FIRST_ACTIVATE_TIME",
		"FIRST_COMPLETE_TIME",
		"AMOUNT",
	}

	StringConfigNames = []string{
		"SERVICE_GROUP",
		"USER_PARTNER",
		"CITY",
		"DISTRICT",
		"WARD",
		"SOURCE",
		"TRANSACTION_TYPE",
	}

	PointTypes = []string{
		"ACTIVE_DAY",
		"SUCCESS_STP",
		"DISTANCE",
		"TRANSACTION",
		"SUPPLIER_PROFILE",
	}
)

// Options returns copies of the known option lists.
func Options() OptionsResponse {
	return OptionsResponse{
		NumberConfigNames: append([]string{}, NumberConfigNames...),
		RangeConfigNames:  append([]string{}, RangeConfigNames...),
		StringConfigNames: append([]string{}, StringConfigNames...),
		PointTypes:        append([]string{}, PointTypes...),
	}
}
