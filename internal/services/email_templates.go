package services

const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            margin: 0;
            padding: 0;
            background-color: #f5f5f5;
        }
        .container {
            max-width: 600px;
            margin: 40px auto;
            background: white;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }
        .header {
            background: #111827;
            color: white;
            padding: 30px;
        }
        .header h1 {
            margin: 0;
            font-size: 22px;
            font-weight: 600;
        }
        .content {
            padding: 30px;
        }
        .meta {
            font-size: 14px;
            color: #6b7280;
            margin-bottom: 20px;
        }
        .message {
            white-space: pre-wrap;
            font-size: 16px;
            color: #1f2937;
        }
        .footer {
            padding: 20px 30px;
            font-size: 12px;
            color: #9ca3af;
            border-top: 1px solid #e5e7eb;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Subject}}</h1>
        </div>
        <div class="content">
            <div class="meta">
                From {{.Name}} &lt;{{.Email}}&gt;<br>
                Received {{.ReceivedAt}}
            </div>
            <div class="message">{{.Message}}</div>
        </div>
        <div class="footer">
            NETRA contact form &middot; reference {{.Reference}}
        </div>
    </div>
</body>
</html>
`

// ContactEmailData is the data for the contact notification template
type ContactEmailData struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	Reference  string
	ReceivedAt string
}
