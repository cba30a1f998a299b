package model

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&RecipientGroup{},
		&Recipient{},
		&Keyword{},
		&KeywordOwner{},
		&SmsInbound{},
		&SmsOutbound{},
		&QueuedSms{},
		&SiteConfiguration{},
		&DefaultResponses{},
	}
}
