/*
Package membersdk is a client for the membership service API.

A Client covers the public endpoints. Admin and Member handles add the
credentials their endpoints require:

	client := membersdk.NewClient("http://localhost:8080")

	app, err := client.SubmitApplication(ctx, membersdk.SubmitApplicationRequest{
		Name: "Ada", Email: "ada@example.com", Company: "Engines", Reason: "networking",
	})

	_, err = client.Admin(adminSecret).Approve(ctx, app.ID)

	// The invite token reaches the applicant out of band.
	reg, err := client.Register(ctx, membersdk.RegisterRequest{Token: token, Password: pw})

	member := client.Member(reg.AccessToken)
	lists, err := member.ListReferrals(ctx)

Non-2xx responses are returned as *APIError; IsStatus matches on the code.
*/
package membersdk
